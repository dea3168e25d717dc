package registry

import (
	"github.com/sgtmarmite/wtfcesko/pkg/chart"
	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
)

// loader decodes a fixture and returns the factory closing over it.
type loader func(store *dataset.Store, fixture string) (Factory, error)

func series(build func(dataset.Dataset) Factory) loader {
	return func(store *dataset.Store, fixture string) (Factory, error) {
		d, err := store.Dataset(fixture)
		if err != nil {
			return nil, err
		}
		return build(d), nil
	}
}

func breakdown(build func(dataset.Breakdown) Factory) loader {
	return func(store *dataset.Store, fixture string) (Factory, error) {
		b, err := store.Breakdown(fixture)
		if err != nil {
			return nil, err
		}
		return build(b), nil
	}
}

type definition struct {
	key     string
	title   string
	source  string
	fixture string
	shape   Shape
	load    loader
}

// definitions lists every chart in page order.
var definitions = []definition{
	{
		key: "kupni-sila", title: "Kupní síla: ceny vs. mzdy", source: "ČSÚ",
		fixture: dataset.InflationVsWages, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return purchasingPower(d, "Index (1993 = 100)") }),
	},
	{
		key: "mzdy-realita", title: "Kolik lidé opravdu berou", source: "ČSÚ, MPSV",
		fixture: dataset.WageReality, shape: ShapeHorizontalBar,
		load: series(func(d dataset.Dataset) Factory { return horizontalBar(d, "Kč / měsíc", nil, nil) }),
	},
	{
		key: "hdp-vs-mzdy", title: "Výkon ekonomiky vs. mzdy", source: "Eurostat",
		fixture: dataset.GDPVsWages, shape: ShapeGroupedBar,
		load: series(func(d dataset.Dataset) Factory { return groupedBar(d, "% průměru EU") }),
	},
	{
		key: "zdaneni-prace", title: "Kam jdou peníze z vaší mzdy", source: "Výpočet pro hrubou mzdu 50 000 Kč",
		fixture: dataset.LaborTaxBreakdown, shape: ShapeDoughnut,
		load: breakdown(laborTax),
	},
	{
		key: "dane", title: "Daňový klín v Evropě", source: "OECD Taxing Wages",
		fixture: dataset.TaxBurden, shape: ShapeHorizontalBar,
		load: series(func(d dataset.Dataset) Factory { return horizontalBar(d, "%", chart.Float(0), chart.Float(55)) }),
	},
	{
		key: "potraviny", title: "Kolik utrácíme za jídlo", source: "Eurostat HBS",
		fixture: dataset.FoodPrices, shape: ShapeHorizontalBar,
		load: series(func(d dataset.Dataset) Factory { return horizontalBar(d, "% výdajů domácností", nil, nil) }),
	},
	{
		key: "energie", title: "Ceny elektřiny pro domácnosti", source: "Eurostat",
		fixture: dataset.EnergyPrices, shape: ShapeHorizontalBar,
		load: series(func(d dataset.Dataset) Factory { return horizontalBar(d, "ct/kWh", nil, nil) }),
	},
	{
		key: "bydleni", title: "Ceny bytů vs. mzdy", source: "ČSÚ, ČNB",
		fixture: dataset.HousingAffordability, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return multiLine(d, "Index (1998 = 100)") }),
	},
	{
		key: "najmy", title: "Nájem jako podíl mzdy", source: "Deloitte Rent Index",
		fixture: dataset.RentVsWages, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return shareLine(d, "% čisté mzdy") }),
	},
	{
		key: "vystavba", title: "Bytová výstavba", source: "ČSÚ",
		fixture: dataset.HousingConstruction, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return multiLine(d, "Počet bytů") }),
	},
	{
		key: "demografie", title: "Porodnost", source: "ČSÚ",
		fixture: dataset.Demographics, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return fertility(d, "Děti na ženu") }),
	},
	{
		key: "zdravotnictvi", title: "Výdaje na zdravotnictví", source: "OECD Health Statistics",
		fixture: dataset.Healthcare, shape: ShapeGroupedBar,
		load: series(func(d dataset.Dataset) Factory { return groupedBar(d, "") }),
	},
	{
		key: "duchody", title: "Důchody vs. mzdy", source: "MPSV",
		fixture: dataset.PensionsVsWages, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return shareLine(d, "% hrubé mzdy") }),
	},
	{
		key: "vydaje-duchody", title: "Stárnutí a výdaje na důchody", source: "MPSV, Ageing Report",
		fixture: dataset.PensionSpending, shape: ShapeCombo,
		load: series(func(d dataset.Dataset) Factory { return barLineCombo(d, "% HDP", "% populace 65+") }),
	},
	{
		key: "statni-dluh", title: "Státní dluh", source: "MF ČR",
		fixture: dataset.GovernmentDebt, shape: ShapeCombo,
		load: series(func(d dataset.Dataset) Factory { return barLineCombo(d, "mld. Kč", "tis. Kč / obyvatel") }),
	},
	{
		key: "obsluha-dluhu", title: "Kolik stojí úroky", source: "MF ČR",
		fixture: dataset.DebtServicing, shape: ShapeGroupedBar,
		load: series(func(d dataset.Dataset) Factory { return singleBar(d, "mld. Kč") }),
	},
	{
		key: "dane-cas", title: "Daňový klín v čase", source: "OECD",
		fixture: dataset.TaxBurdenTime, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return multiLine(d, "Tax wedge (%)") }),
	},
	{
		key: "produktivita", title: "Produktivita práce", source: "Eurostat",
		fixture: dataset.Productivity, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return multiLine(d, "EUR / hodinu (PPS)") }),
	},
	{
		key: "skolstvi", title: "Výdaje na vzdělávání", source: "Eurostat",
		fixture: dataset.EducationSpending, shape: ShapeGroupedBar,
		load: series(func(d dataset.Dataset) Factory { return groupedBar(d, "") }),
	},
	{
		key: "vyzkum", title: "Výdaje na výzkum a vývoj", source: "Eurostat",
		fixture: dataset.RDSpending, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return multiLine(d, "% HDP") }),
	},
	{
		key: "korupce-digital", title: "Vnímání korupce", source: "Transparency International",
		fixture: dataset.CorruptionDigital, shape: ShapeLine,
		load: series(func(d dataset.Dataset) Factory { return multiLine(d, "CPI (0–100)") }),
	},
	{
		key: "volby-vek", title: "Jak volí věkové skupiny", source: "Povolební průzkum",
		fixture: dataset.VotingByAge, shape: ShapeStackedBar,
		load: series(func(d dataset.Dataset) Factory { return stackedShares(d, "% voličů") }),
	},
}
