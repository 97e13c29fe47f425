package geo

import (
	"strings"
	"sync"

	"github.com/paulmach/orb"
)

// Gazetteer maps well-known place names to coordinates. It is read-only once built.
type Gazetteer struct {
	entries map[string]orb.Point
}

// NewGazetteer builds a gazetteer from the given entries. Keys are normalized
// the same way lookups are.
func NewGazetteer(entries map[string]orb.Point) *Gazetteer {
	normalized := make(map[string]orb.Point, len(entries))
	for name, point := range entries {
		normalized[normalizeName(name)] = point
	}

	return &Gazetteer{entries: normalized}
}

// DefaultGazetteer returns the process-wide gazetteer of Indian cities and tourist spots.
var DefaultGazetteer = sync.OnceValue(func() *Gazetteer {
	return NewGazetteer(indiaLocations)
})

// Resolve looks up a name after trimming and lower-casing it. Only exact matches count.
func (g *Gazetteer) Resolve(name string) (orb.Point, bool) {
	key := normalizeName(name)
	if key == "" {
		return orb.Point{}, false
	}

	point, ok := g.entries[key]

	return point, ok
}

// Len returns the number of known names, aliases included.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// indiaLocations is keyed by lower-case name; aliases share coordinates.
var indiaLocations = map[string]orb.Point{
	// Metros and state capitals
	"warangal":           NewPoint(17.9784, 79.5941),
	"hyderabad":          NewPoint(17.3850, 78.4867),
	"bangalore":          NewPoint(12.9716, 77.5946),
	"bengaluru":          NewPoint(12.9716, 77.5946),
	"chennai":            NewPoint(13.0827, 80.2707),
	"mumbai":             NewPoint(19.0760, 72.8777),
	"delhi":              NewPoint(28.6139, 77.2090),
	"new delhi":          NewPoint(28.6139, 77.2090),
	"kolkata":            NewPoint(22.5726, 88.3639),
	"pune":               NewPoint(18.5204, 73.8567),
	"jaipur":             NewPoint(26.9124, 75.7873),
	"goa":                NewPoint(15.2993, 74.1240),
	"kochi":              NewPoint(9.9312, 76.2673),
	"cochin":             NewPoint(9.9312, 76.2673),
	"thiruvananthapuram": NewPoint(8.5241, 76.9366),
	"trivandrum":         NewPoint(8.5241, 76.9366),
	"chandigarh":         NewPoint(30.7333, 76.7794),
	"lucknow":            NewPoint(26.8467, 80.9462),
	"ahmedabad":          NewPoint(23.0225, 72.5714),
	"bhopal":             NewPoint(23.2599, 77.4126),
	"indore":             NewPoint(22.7196, 75.8577),
	"nagpur":             NewPoint(21.1458, 79.0882),
	"patna":              NewPoint(25.6093, 85.1376),
	"bhubaneswar":        NewPoint(20.2961, 85.8245),
	"guwahati":           NewPoint(26.1445, 91.7362),

	// South India
	"mysore":        NewPoint(12.3051, 76.6551),
	"mysuru":        NewPoint(12.3051, 76.6551),
	"vizag":         NewPoint(17.6868, 83.2185),
	"visakhapatnam": NewPoint(17.6868, 83.2185),
	"vijayawada":    NewPoint(16.5062, 80.6480),
	"tirupati":      NewPoint(13.6288, 79.4192),
	"madurai":       NewPoint(9.9252, 78.1198),
	"coimbatore":    NewPoint(11.0168, 76.9558),
	"trichy":        NewPoint(10.7905, 78.7047),
	"thanjavur":     NewPoint(10.7870, 79.1378),
	"pondicherry":   NewPoint(11.9416, 79.8083),
	"puducherry":    NewPoint(11.9416, 79.8083),
	"guntur":        NewPoint(16.3067, 80.4365),
	"nellore":       NewPoint(14.4426, 79.9865),
	"khammam":       NewPoint(17.2473, 80.1514),
	"nizamabad":     NewPoint(18.6725, 78.0940),
	"karimnagar":    NewPoint(18.4386, 79.1288),
	"salem":         NewPoint(11.6643, 78.1460),
	"srisailam":     NewPoint(15.8512, 78.8680),
	"araku":         NewPoint(18.3273, 82.8759),

	// Hill stations
	"shimla":      NewPoint(31.1048, 77.1734),
	"manali":      NewPoint(32.2396, 77.1887),
	"ooty":        NewPoint(11.4102, 76.6950),
	"munnar":      NewPoint(10.0889, 77.0595),
	"darjeeling":  NewPoint(27.0410, 88.2663),
	"gangtok":     NewPoint(27.3389, 88.6065),
	"mussoorie":   NewPoint(30.4598, 78.0644),
	"nainital":    NewPoint(29.3919, 79.4542),
	"kodaikanal":  NewPoint(10.2381, 77.4892),
	"coorg":       NewPoint(12.3375, 75.8069),
	"wayanad":     NewPoint(11.6854, 76.1320),
	"lonavala":    NewPoint(18.7546, 73.4062),
	"mount abu":   NewPoint(24.5926, 72.7156),
	"dehradun":    NewPoint(30.3165, 78.0322),
	"leh":         NewPoint(34.1526, 77.5771),
	"srinagar":    NewPoint(34.0837, 74.7973),

	// Heritage and pilgrimage
	"udaipur":       NewPoint(24.5854, 73.7125),
	"jodhpur":       NewPoint(26.2389, 73.0243),
	"varanasi":      NewPoint(25.3176, 83.0036),
	"agra":          NewPoint(27.1767, 78.0081),
	"amritsar":      NewPoint(31.6200, 74.8765),
	"rishikesh":     NewPoint(30.0869, 78.2676),
	"hampi":         NewPoint(15.3350, 76.4600),
	"puri":          NewPoint(19.8135, 85.8312),
	"mahabalipuram": NewPoint(12.6172, 80.1927),
	"rameshwaram":   NewPoint(9.2876, 79.3129),
	"kanyakumari":   NewPoint(8.0883, 77.5385),
	"ajmer":         NewPoint(26.4499, 74.6399),

	// Coast
	"alleppey":  NewPoint(9.4981, 76.3388),
	"kovalam":   NewPoint(8.3988, 76.9780),
	"varkala":   NewPoint(8.7379, 76.7163),
	"calangute": NewPoint(15.5439, 73.7553),
	"baga":      NewPoint(15.5553, 73.7517),
	"anjuna":    NewPoint(15.5733, 73.7400),
	"palolem":   NewPoint(15.0100, 74.0232),
	"juhu":      NewPoint(19.0988, 72.8267),
}
