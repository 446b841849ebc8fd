// Package fixture holds the static dataset the sort comparator benchmarks
// against.
package fixture

// Record is a band and its member count.
type Record struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

var records = [...]Record{
	{"Lights", 1},
	{"Blink-182", 3},
	{"Jamestown Story", 1},
	{"Linkin Park", 1},
	{"Aerosmith", 3},
	{"Guns n Roses", 1},
	{"Priest", 1},
	{"PVRIS", 3},
	{"Yellowcard", 1},
	{"City Lights", 1},
	{"Anberlin", 3},
	{"The Red Jumpsuit Apparatus", 1},
	{"Airspoken", 1},
	{"Amycambe", 3},
	{"Plus 44", 1},
	{"Box Car Racer", 1},
	{"Sum 41", 3},
	{"Oasis", 1},
}

// Records returns a fresh copy of the fixture in its original order.
func Records() []Record {
	out := make([]Record, len(records))
	copy(out, records[:])
	return out
}

// ByLabel is the sort key accessor for Record.
func ByLabel(r Record) string {
	return r.Label
}

// Labels returns the labels of rs in order.
func Labels(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Label
	}
	return out
}
