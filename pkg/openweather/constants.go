package openweather

// Language is a response language code accepted by the API
type Language string

// Supported languages
const (
	Afrikaans          Language = "af"
	Albanian           Language = "al"
	Arabic             Language = "ar"
	Azerbaijani        Language = "az"
	Bulgarian          Language = "bg"
	Catalan            Language = "ca"
	Czech              Language = "cz"
	Danish             Language = "da"
	German             Language = "de"
	Greek              Language = "el"
	English            Language = "en"
	Basque             Language = "eu"
	Persian            Language = "fa"
	Finnish            Language = "fi"
	French             Language = "fr"
	Galician           Language = "gl"
	Hebrew             Language = "he"
	Hindi              Language = "hi"
	Croatian           Language = "hr"
	Hungarian          Language = "hu"
	Indonesian         Language = "id"
	Italian            Language = "it"
	Japanese           Language = "ja"
	Korean             Language = "kr"
	Latvian            Language = "la"
	Lithuanian         Language = "lt"
	Macedonian         Language = "mk"
	Norwegian          Language = "no"
	Dutch              Language = "nl"
	Polish             Language = "pl"
	Portuguese         Language = "pt"
	PortugueseBrazil   Language = "pt_br"
	Romanian           Language = "ro"
	Russian            Language = "ru"
	Swedish            Language = "se"
	Slovak             Language = "sk"
	Slovenian          Language = "sl"
	Spanish            Language = "es"
	Serbian            Language = "sr"
	Thai               Language = "th"
	Turkish            Language = "tr"
	Ukrainian          Language = "ua"
	Vietnamese         Language = "vi"
	ChineseSimplified  Language = "zh_cn"
	ChineseTraditional Language = "zh_tw"
	Zulu               Language = "zu"
)

// Unit is the measurement system used in responses
type Unit string

const (
	// Standard reports temperature in Kelvin and speed in m/s
	Standard Unit = "standard"
	// Metric reports temperature in Celsius and speed in m/s
	Metric Unit = "metric"
	// Imperial reports temperature in Fahrenheit and speed in mph
	Imperial Unit = "imperial"
)

// Exclude names a One Call section the API should leave out
type Exclude string

const (
	ExcludeCurrent  Exclude = "current"
	ExcludeMinutely Exclude = "minutely"
	ExcludeHourly   Exclude = "hourly"
	ExcludeDaily    Exclude = "daily"
	ExcludeAlerts   Exclude = "alerts"

	// ExcludeAll drops every optional section
	ExcludeAll Exclude = "current,minutely,hourly,daily,alerts"
)

// MapLayer identifies a weather map tile layer
type MapLayer string

const (
	LayerClouds           MapLayer = "clouds_new"
	LayerPrecipitation    MapLayer = "precipitation_new"
	LayerSeaLevelPressure MapLayer = "pressure_new"
	LayerWindSpeed        MapLayer = "wind_new"
	LayerTemperature      MapLayer = "temp_new"
)

// Default endpoints
const (
	DefaultAPIURL       = "https://api.openweathermap.org"
	DefaultPollutionURL = "http://api.openweathermap.org"
	DefaultTileURL      = "https://tile.openweathermap.org"
)
