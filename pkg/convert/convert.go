// Package convert implements the unit conversions served by /unit/{n}.
package convert

const (
	feetPerMeter    = 3.28084
	kmPerMile       = 1.609344
	cmPerInch       = 2.54
	metersPerYard   = 0.9144
	litersPerGallon = 3.785411784
	litersPerPint   = 0.473176473
	litersPerQuart  = 0.946352946
	mlPerCup        = 236.5882365
	mlPerTablespoon = 14.78676478125
	mlPerTeaspoon   = 4.92892159375
	mlPerFluidOunce = 29.5735295625
	kgPerPound      = 0.45359237
	gramsPerOunce   = 28.349523125
)

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }
func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func MetersToFeet(m float64) float64   { return m * feetPerMeter }
func FeetToMeters(ft float64) float64  { return ft / feetPerMeter }
func MilesToKm(mi float64) float64     { return mi * kmPerMile }
func KmToMiles(km float64) float64     { return km / kmPerMile }
func InchesToCm(in float64) float64    { return in * cmPerInch }
func CmToInches(cm float64) float64    { return cm / cmPerInch }
func YardsToMeters(yd float64) float64 { return yd * metersPerYard }
func MetersToYards(m float64) float64  { return m / metersPerYard }

func GallonsToLiters(gal float64) float64           { return gal * litersPerGallon }
func LitersToGallons(l float64) float64             { return l / litersPerGallon }
func PintsToLiters(pt float64) float64              { return pt * litersPerPint }
func LitersToPints(l float64) float64               { return l / litersPerPint }
func QuartsToLiters(qt float64) float64             { return qt * litersPerQuart }
func LitersToQuarts(l float64) float64              { return l / litersPerQuart }
func CupsToMilliliters(c float64) float64           { return c * mlPerCup }
func MillilitersToCups(ml float64) float64          { return ml / mlPerCup }
func TablespoonsToMilliliters(tbsp float64) float64 { return tbsp * mlPerTablespoon }
func MillilitersToTablespoons(ml float64) float64   { return ml / mlPerTablespoon }
func TeaspoonsToMilliliters(tsp float64) float64    { return tsp * mlPerTeaspoon }
func MillilitersToTeaspoons(ml float64) float64     { return ml / mlPerTeaspoon }
func FluidOuncesToMilliliters(oz float64) float64   { return oz * mlPerFluidOunce }
func MillilitersToFluidOunces(ml float64) float64   { return ml / mlPerFluidOunce }

func PoundsToKg(lb float64) float64    { return lb * kgPerPound }
func KgToPounds(kg float64) float64    { return kg / kgPerPound }
func OuncesToGrams(oz float64) float64 { return oz * gramsPerOunce }
func GramsToOunces(g float64) float64  { return g / gramsPerOunce }

type Temperature struct {
	FahrenheitToCelsius float64 `json:"farenheit_to_celsius"`
	CelsiusToFahrenheit float64 `json:"celsius_to_farenheit"`
}

type Length struct {
	MetersToFeet  float64 `json:"meters_to_feet"`
	FeetToMeters  float64 `json:"feet_to_meters"`
	MilesToKm     float64 `json:"miles_to_km"`
	KmToMiles     float64 `json:"km_to_miles"`
	InchesToCm    float64 `json:"inches_to_cm"`
	CmToInches    float64 `json:"cm_to_inches"`
	YardsToMeters float64 `json:"yards_to_meters"`
	MetersToYards float64 `json:"meters_to_yards"`
}

type Volume struct {
	GallonsToLiters          float64 `json:"gallons_to_liters"`
	LitersToGallons          float64 `json:"liters_to_gallons"`
	PintsToLiters            float64 `json:"pints_to_liters"`
	LitersToPints            float64 `json:"liters_to_pints"`
	LitersToQuarts           float64 `json:"liters_to_quarts"`
	QuartsToLiters           float64 `json:"quarts_to_liters"`
	CupsToMilliliters        float64 `json:"cups_to_milliliters"`
	MillilitersToCups        float64 `json:"milliliters_to_cups"`
	TablespoonsToMilliliters float64 `json:"tablespoons_to_milliliters"`
	MillilitersToTablespoons float64 `json:"milliliters_to_tablespoons"`
	TeaspoonsToMilliliters   float64 `json:"teaspoons_to_milliliters"`
	MillilitersToTeaspoons   float64 `json:"milliliters_to_teaspoons"`
	MillilitersToFluidOunces float64 `json:"milliliters_to_fluid_ounces"`
	FluidOuncesToMilliliters float64 `json:"fluid_ounces_to_milliliters"`
}

type Mass struct {
	PoundsToKg    float64 `json:"lbs_to_kg"`
	KgToPounds    float64 `json:"kg_to_lbs"`
	OuncesToGrams float64 `json:"oz_to_g"`
	GramsToOunces float64 `json:"g_to_oz"`
}

// Conversions is every supported conversion of a single value.
type Conversions struct {
	Temperature Temperature `json:"temperature"`
	Length      Length      `json:"length"`
	Volume      Volume      `json:"volume"`
	Mass        Mass        `json:"mass"`
}

func All(n float64) Conversions {
	return Conversions{
		Temperature: Temperature{
			FahrenheitToCelsius: FahrenheitToCelsius(n),
			CelsiusToFahrenheit: CelsiusToFahrenheit(n),
		},
		Length: Length{
			MetersToFeet:  MetersToFeet(n),
			FeetToMeters:  FeetToMeters(n),
			MilesToKm:     MilesToKm(n),
			KmToMiles:     KmToMiles(n),
			InchesToCm:    InchesToCm(n),
			CmToInches:    CmToInches(n),
			YardsToMeters: YardsToMeters(n),
			MetersToYards: MetersToYards(n),
		},
		Volume: Volume{
			GallonsToLiters:          GallonsToLiters(n),
			LitersToGallons:          LitersToGallons(n),
			PintsToLiters:            PintsToLiters(n),
			LitersToPints:            LitersToPints(n),
			LitersToQuarts:           LitersToQuarts(n),
			QuartsToLiters:           QuartsToLiters(n),
			CupsToMilliliters:        CupsToMilliliters(n),
			MillilitersToCups:        MillilitersToCups(n),
			TablespoonsToMilliliters: TablespoonsToMilliliters(n),
			MillilitersToTablespoons: MillilitersToTablespoons(n),
			TeaspoonsToMilliliters:   TeaspoonsToMilliliters(n),
			MillilitersToTeaspoons:   MillilitersToTeaspoons(n),
			MillilitersToFluidOunces: MillilitersToFluidOunces(n),
			FluidOuncesToMilliliters: FluidOuncesToMilliliters(n),
		},
		Mass: Mass{
			PoundsToKg:    PoundsToKg(n),
			KgToPounds:    KgToPounds(n),
			OuncesToGrams: OuncesToGrams(n),
			GramsToOunces: GramsToOunces(n),
		},
	}
}
