// Package catalog holds the static reference data the seed script is built
// from. Every list is read-only after init; positions in Vendors and
// Customers double as their database identifiers (1-based).
package catalog

// BaseCurrency is the currency sales and aggregate totals are recorded in.
const BaseCurrency = "UAH"

type Country struct {
	Code string
	Name string
}

type Currency struct {
	Code   string
	Name   string
	Symbol string
}

type Vendor struct {
	Name         string
	CountryCode  string
	CurrencyCode string
	Contact      string
}

type Customer struct {
	Company string
	Contact string
	Email   string
	Phone   string
}

// HeaterModel is a catalog entry; PriceLow/PriceHigh bound its price in the
// base currency.
type HeaterModel struct {
	SKU          string
	Name         string
	Manufacturer string
	CapacityKW   float64
	PriceLow     float64
	PriceHigh    float64
}

// Pair is a quoted currency pair: units of To per one unit of From.
type Pair struct {
	From string
	To   string
}

func (p Pair) String() string {
	return p.From + "/" + p.To
}

// InitialRate is the opening quote of a simulated series.
type InitialRate struct {
	Pair Pair
	Rate float64
}

var Countries = []Country{
	{"US", "United States"},
	{"DE", "Germany"},
	{"CN", "China"},
	{"PL", "Poland"},
	{"UA", "Ukraine"},
}

var Currencies = []Currency{
	{"UAH", "Ukrainian Hryvnia", "₴"},
	{"USD", "US Dollar", "$"},
	{"EUR", "Euro", "€"},
	{"CNY", "Chinese Yuan", "¥"},
	{"PLN", "Polish Zloty", "zł"},
}

// InitialRates are UAH per unit of foreign currency on the first day.
var InitialRates = []InitialRate{
	{Pair{"USD", BaseCurrency}, 38.50},
	{Pair{"EUR", BaseCurrency}, 42.30},
	{Pair{"CNY", BaseCurrency}, 5.40},
	{Pair{"PLN", BaseCurrency}, 9.80},
}

var Vendors = []Vendor{
	{"ThermoTech USA Inc.", "US", "USD", "contact@thermotech-usa.com"},
	{"HeizKraft GmbH", "DE", "EUR", "info@heizkraft.de"},
	{"Warmth Industries Ltd.", "CN", "CNY", "sales@warmth.cn"},
	{"Polski Grzewczy Sp. z o.o.", "PL", "PLN", "biuro@polskigrzewczy.pl"},
}

var HeaterModels = []HeaterModel{
	// High-end industrial
	{"BOSCH-IH-5000", "Bosch Industrial Heater 5000", "Bosch", 50.0, 25000, 30000},
	{"BOSCH-IH-7500", "Bosch Industrial Heater 7500", "Bosch", 75.0, 35000, 42000},
	{"BOSCH-IH-10K", "Bosch Industrial Heater 10000", "Bosch", 100.0, 48000, 55000},

	// Mid-range
	{"CARRIER-CH-3000", "Carrier Commercial Heater 3000", "Carrier", 30.0, 18000, 22000},
	{"CARRIER-CH-4500", "Carrier Commercial Heater 4500", "Carrier", 45.0, 24000, 28000},
	{"CARRIER-CH-6000", "Carrier Commercial Heater 6000", "Carrier", 60.0, 32000, 38000},

	{"MITS-HE-2500", "Mitsubishi Heavy Electric 2500", "Mitsubishi", 25.0, 15000, 18000},
	{"MITS-HE-5000", "Mitsubishi Heavy Electric 5000", "Mitsubishi", 50.0, 28000, 33000},
	{"MITS-HE-8000", "Mitsubishi Heavy Electric 8000", "Mitsubishi", 80.0, 42000, 48000},

	// Budget
	{"HW-EC-2000", "HeatWave EconoMax 2000", "HeatWave", 20.0, 8000, 12000},
	{"HW-EC-3500", "HeatWave EconoMax 3500", "HeatWave", 35.0, 14000, 18000},
	{"HW-EC-5000", "HeatWave EconoMax 5000", "HeatWave", 50.0, 20000, 25000},

	{"PG-TH-3000", "PolGrzew ThermoMax 3000", "PolGrzew", 30.0, 16000, 20000},
	{"PG-TH-4000", "PolGrzew ThermoMax 4000", "PolGrzew", 40.0, 22000, 26000},

	// High power
	{"BOSCH-IP-15K", "Bosch Industrial Pro 15000", "Bosch", 150.0, 68000, 78000},
	{"CARRIER-HP-12K", "Carrier HeavyPower 12000", "Carrier", 120.0, 58000, 65000},

	// Compact
	{"MITS-CM-1500", "Mitsubishi Compact 1500", "Mitsubishi", 15.0, 10000, 13000},
	{"BOSCH-CM-1800", "Bosch Compact 1800", "Bosch", 18.0, 12000, 15000},

	{"CARRIER-EE-3500", "Carrier EcoEfficient 3500", "Carrier", 35.0, 26000, 30000},
	{"MITS-EE-4000", "Mitsubishi EcoEfficient 4000", "Mitsubishi", 40.0, 28000, 32000},

	{"BOSCH-HD-20K", "Bosch HeavyDuty 20000", "Bosch", 200.0, 88000, 98000},
	{"CARRIER-HD-18K", "Carrier HeavyDuty 18000", "Carrier", 180.0, 78000, 88000},

	{"HW-BS-1500", "HeatWave BasicStar 1500", "HeatWave", 15.0, 6000, 9000},
	{"HW-BS-2500", "HeatWave BasicStar 2500", "HeatWave", 25.0, 10000, 14000},
	{"PG-ST-2000", "PolGrzew Standard 2000", "PolGrzew", 20.0, 11000, 14000},

	{"BOSCH-SM-8000", "Bosch SmartMax 8000", "Bosch", 80.0, 45000, 52000},
	{"MITS-SM-7000", "Mitsubishi SmartMax 7000", "Mitsubishi", 70.0, 38000, 44000},
	{"CARRIER-SM-9000", "Carrier SmartMax 9000", "Carrier", 90.0, 48000, 55000},
}

var Customers = []Customer{
	{"Kyiv Manufacturing Corp.", "Oleksandr Petrenko", "o.petrenko@kyivmfg.ua", "+380441234567"},
	{"Lviv Industrial Solutions", "Natalia Kovalenko", "n.kovalenko@lvivind.ua", "+380322345678"},
	{"Odesa Logistics Hub", "Viktor Shevchenko", "v.shevchenko@odesalog.ua", "+380482456789"},
	{"Kharkiv Engineering Ltd.", "Iryna Bondarenko", "i.bondarenko@kharkiveng.ua", "+380573567890"},
	{"Dnipro Heavy Industries", "Andriy Kravchenko", "a.kravchenko@dnipro-heavy.ua", "+380562678901"},
	{"Zaporizhzhia Steel Works", "Oksana Moroz", "o.moroz@zapsteel.ua", "+380612789012"},
	{"Poltava Agricultural Systems", "Dmytro Tkachenko", "d.tkachenko@poltavaagri.ua", "+380532890123"},
	{"Chernihiv Processing Plant", "Yulia Lysenko", "y.lysenko@chernihivproc.ua", "+380462901234"},
	{"Vinnytsia Food Industries", "Sergiy Koval", "s.koval@vinnytsiafood.ua", "+380432012345"},
	{"Zhytomyr Construction Group", "Tetiana Savchenko", "t.savchenko@zhytomyrconstr.ua", "+380412123456"},
	{"Rivne Energy Systems", "Maksym Polishchuk", "m.polishchuk@rivneenergy.ua", "+380362234567"},
	{"Ternopil Manufacturing Hub", "Olena Melnyk", "o.melnyk@ternopilmfg.ua", "+380352345678"},
	{"Ivano-Frankivsk Industries", "Roman Boyko", "r.boyko@ifind.ua", "+380342456789"},
	{"Lutsk Production Facility", "Marina Koval", "m.koval@lutskprod.ua", "+380332567890"},
	{"Uzhhorod Border Logistics", "Vasyl Horvat", "v.horvat@uzhlog.ua", "+380312678901"},
}

// settlementDivisors approximate base-currency prices in a vendor's currency.
// They are fixed and deliberately independent of the simulated rate series.
var settlementDivisors = map[string]float64{
	"USD": 40,
	"EUR": 45,
	"CNY": 5.5,
	"PLN": 10,
}

// SettlementDivisor returns the divisor used to quote a base-currency price
// in currency. Unknown currencies are quoted unchanged.
func SettlementDivisor(currency string) float64 {
	if d, ok := settlementDivisors[currency]; ok {
		return d
	}
	return 1
}

// VendorByID returns the vendor at 1-based id.
func VendorByID(id int) (Vendor, bool) {
	if id < 1 || id > len(Vendors) {
		return Vendor{}, false
	}
	return Vendors[id-1], true
}
