package weather

import "github.com/i474232898/weathernow/internal/common"

// Record is the display-ready current-weather record returned by the proxy.
// It mirrors the upstream OpenWeatherMap shape: temperature and humidity under
// "main", wind speed under "wind", the localized description in "weather[0]".
type Record struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []Condition `json:"weather"`
}

// Condition is one entry of the upstream "weather" array.
type Condition struct {
	Main        string `json:"main,omitempty"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// TemperatureC returns the temperature in degrees Celsius.
func (r Record) TemperatureC() float64 { return r.Main.Temp }

// HumidityPct returns the relative humidity in percent.
func (r Record) HumidityPct() float64 { return r.Main.Humidity }

// WindSpeedMs returns the wind speed in metres per second.
func (r Record) WindSpeedMs() float64 { return r.Wind.Speed }

// Description returns the localized condition text, or "" if the upstream sent none.
func (r Record) Description() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return r.Weather[0].Description
}

// GeoMatch is a single result of the upstream direct-geocoding call.
type GeoMatch struct {
	Name       string            `json:"name"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country,omitempty"`
	LocalNames map[string]string `json:"local_names,omitempty"`
}

// DisplayName picks the name to show for lang, preferring the local name in
// that language and falling back to the canonical geocoded name.
func DisplayName(m GeoMatch, lang string) string {
	var local string
	switch lang {
	case "ko":
		local = m.LocalNames["ko"]
	case "zh":
		local = common.FirstNonEmpty(m.LocalNames["zh"], m.LocalNames["zh_cn"])
	case "en":
		local = m.LocalNames["en"]
	}
	return common.FirstNonEmpty(local, m.Name)
}
