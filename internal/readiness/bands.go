package readiness

// Band maps a range of attempt numbers to a status line. An attempt matches
// the first band whose Below value exceeds it; the final band should use
// Below = 0 (no upper bound) to catch everything else.
type Band struct {
	Below int
	Text  string
}

// DefaultBands is the qualitative progress feedback shown while waiting.
// The backend reports no real progress, so the bands just reflect how long
// a typical boot spends in each phase.
var DefaultBands = []Band{
	{Below: 10, Text: "Starting server..."},
	{Below: 30, Text: "Running database migrations..."},
	{Below: 0, Text: "Almost ready..."},
}

// StatusText derives the status line for an attempt number from an ordered
// band table. It is a pure function of the attempt.
func StatusText(bands []Band, attempt int) string {
	for _, band := range bands {
		if band.Below <= 0 || attempt < band.Below {
			return band.Text
		}
	}
	return ""
}
