package registry

import "fmt"

// Act is a narrative section of the page grouping several charts.
type Act struct {
	ID     string   // Section element id, "akt-<Number>"
	Number int      // 1-based position
	Title  string   // Section heading
	Lead   string   // One-paragraph introduction
	Keys   []string // Chart keys in display order
}

// ActID returns the section id for the n-th act.
func ActID(n int) string {
	return fmt.Sprintf("akt-%d", n)
}

func acts() []Act {
	list := []Act{
		{
			Title: "Peníze v kapse",
			Lead:  "Mzdy rostou, ale kolik si za ně doopravdy koupíme a kolik z nich skončí u státu?",
			Keys:  []string{"kupni-sila", "mzdy-realita", "hdp-vs-mzdy", "zdaneni-prace"},
		},
		{
			Title: "Daně a ceny",
			Lead:  "Práci zdaňujeme víc než většina Evropy a za jídlo a energie platíme relativně hodně.",
			Keys:  []string{"dane", "potraviny", "energie"},
		},
		{
			Title: "Bydlení",
			Lead:  "Ceny bytů utekly mzdám, nájmy berou téměř polovinu výplaty a staví se málo.",
			Keys:  []string{"bydleni", "najmy", "vystavba"},
		},
		{
			Title: "Stárnoucí země",
			Lead:  "Rodí se málo dětí, zdravotnictví i důchody budou stát víc.",
			Keys:  []string{"demografie", "zdravotnictvi", "duchody", "vydaje-duchody"},
		},
		{
			Title: "Dluh",
			Lead:  "Státní dluh se za patnáct let ztrojnásobil a úroky už stojí desítky miliard ročně.",
			Keys:  []string{"statni-dluh", "obsluha-dluhu", "dane-cas"},
		},
		{
			Title: "Budoucnost",
			Lead:  "Produktivita, vzdělání, výzkum a důvěra v instituce rozhodnou, kam se země posune.",
			Keys:  []string{"produktivita", "skolstvi", "vyzkum", "korupce-digital", "volby-vek"},
		},
	}
	for i := range list {
		list[i].Number = i + 1
		list[i].ID = ActID(i + 1)
	}
	return list
}
