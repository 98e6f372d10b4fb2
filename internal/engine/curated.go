package engine

// Curated fallback pools, split by a coarse duration heuristic. They run
// through the same normalize/filter/score/select pipeline as live candidates,
// so the caller only sees the difference via the response mode tag.

// CuratedPools holds the static fallback candidates.
type CuratedPools struct {
	ShortHaul []RawCandidate
	LongHaul  []RawCandidate
}

// PoolFor picks the pool matching the flight-time ceiling.
func (p CuratedPools) PoolFor(userHours float64) []RawCandidate {
	if userHours <= 5 {
		return p.ShortHaul
	}
	return p.LongHaul
}

func hoursOf(v float64) *RawHours {
	return &RawHours{Value: v, Known: true}
}

// DefaultCuratedPools returns the built-in fallback candidates, assuming a
// European origin. A deployment can override them via configuration.
func DefaultCuratedPools() CuratedPools {
	return CuratedPools{
		ShortHaul: []RawCandidate{
			{
				City: "Barcelona", Country: "Spain", Region: "europe", Type: "city",
				Themes:             []string{"food", "beach", "culture", "nightlife"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(2.1),
				Summary:            "Gaudí architecture and tapas culture a short hop away, with city beaches on the doorstep.",
				Highlights: []string{
					"Sagrada Família's stone forest interior at golden hour",
					"Tapas crawl through La Boqueria's sizzling market stalls",
					"Barceloneta beach with the scent of grilled sardines",
				},
			},
			{
				City: "Lisbon", Country: "Portugal", Region: "europe", Type: "city",
				Themes:             []string{"food", "culture", "romance"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(2.9),
				Summary:            "Hilly riverside capital of tiled facades, custard tarts and melancholy fado.",
				Highlights: []string{
					"Tram 28 rattling up through Alfama's tiled alleys",
					"Warm pastéis de nata dusted with cinnamon in Belém",
					"Sunset over the Tagus from the Miradouro da Graça",
				},
			},
			{
				City: "Prague", Country: "Czech Republic", Region: "europe", Type: "culture",
				Themes:             []string{"culture", "museums", "nightlife"},
				BestSeasons:        []string{"spring", "autumn", "winter"},
				ApproxNonstopHours: hoursOf(1.6),
				Summary:            "Gothic spires and beer halls packed into one walkable medieval core.",
				Highlights: []string{
					"Charles Bridge at dawn before the crowds arrive",
					"The astronomical clock striking the hour in Old Town Square",
					"Cellar beer hall pouring unfiltered Pilsner by the half-litre",
				},
			},
			{
				City: "Rome", Country: "Italy", Region: "europe", Type: "culture",
				Themes:             []string{"culture", "museums", "food"},
				BestSeasons:        []string{"spring", "autumn"},
				ApproxNonstopHours: hoursOf(2.0),
				Summary:            "Layer upon layer of empire, baroque fountains and unhurried trattorie.",
				Highlights: []string{
					"The Pantheon's oculus casting its moving disc of light",
					"Cacio e pepe in a Trastevere trattoria with paper tablecloths",
					"The Forum at dusk when the stones glow amber",
				},
			},
			{
				City: "Athens", Country: "Greece", Region: "europe", Type: "culture",
				Themes:             []string{"culture", "museums", "food", "nightlife"},
				BestSeasons:        []string{"spring", "autumn"},
				ApproxNonstopHours: hoursOf(3.4),
				Summary:            "Ancient marble above, buzzing neighborhood tavernas below.",
				Highlights: []string{
					"The Parthenon's columns against a hard blue sky",
					"Grilled octopus and ouzo in a Psiri taverna",
					"Rooftop bars facing the floodlit Acropolis at night",
				},
			},
			{
				City: "Dubrovnik", Country: "Croatia", Region: "europe", Type: "beach",
				Themes:             []string{"beach", "culture", "romance"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(2.5),
				Summary:            "Walled marble old town dropping straight into clear Adriatic water.",
				Highlights: []string{
					"Circuit of the city walls with the sea glittering below",
					"Swimming off the rocks at Buža bar outside the walls",
					"Cable car to Mount Srđ for the red-roof panorama",
				},
			},
			{
				City: "Crete", Country: "Greece", Region: "europe", Type: "beach",
				Themes:             []string{"beach", "food", "nature", "family"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(3.8),
				Summary:            "Big island mix of pink-sand beaches, gorge hikes and Minoan ruins.",
				Highlights: []string{
					"Pink sand and shallow lagoons at Elafonissi beach",
					"Chania's Venetian harbor lit up at dinner time",
					"Olive oil and mountain herb tasting at a village mill",
				},
			},
			{
				City: "Vienna", Country: "Austria", Region: "europe", Type: "city",
				Themes:             []string{"museums", "culture", "food"},
				BestSeasons:        []string{"spring", "autumn", "winter"},
				ApproxNonstopHours: hoursOf(1.9),
				Summary:            "Imperial boulevards, world-class museums and unapologetic cake.",
				Highlights: []string{
					"Bruegel room at the Kunsthistorisches Museum",
					"Sachertorte with whipped cream in a wood-panelled Kaffeehaus",
					"Standing tickets for the opera for a few euros",
				},
			},
			{
				City: "Marrakech", Country: "Morocco", Region: "north_africa", Type: "culture",
				Themes:             []string{"culture", "shopping", "food", "adventure"},
				BestSeasons:        []string{"spring", "autumn", "winter"},
				ApproxNonstopHours: hoursOf(3.9),
				Summary:            "Sensory overload of souks, storytellers and riad courtyards.",
				Highlights: []string{
					"Jemaa el-Fnaa filling with smoke and drummers at dusk",
					"Cobalt blue calm of the Jardin Majorelle",
					"Haggling for lanterns in the metalworkers' souk",
				},
			},
			{
				City: "Reykjavik", Country: "Iceland", Region: "europe", Type: "nature",
				Themes:             []string{"nature", "adventure", "relaxation"},
				BestSeasons:        []string{"summer", "winter"},
				ApproxNonstopHours: hoursOf(3.2),
				Summary:            "Small-city base for waterfalls, lava fields and geothermal soaking.",
				Highlights: []string{
					"Steam rising off the Sky Lagoon at the ocean's edge",
					"Gullfoss thundering into its canyon on the Golden Circle",
					"Northern lights hunting on a clear winter night",
				},
			},
			{
				City: "Algarve", Country: "Portugal", Region: "europe", Type: "beach",
				Themes:             []string{"beach", "family", "relaxation", "food"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(2.9),
				Summary:            "Golden cliffs, sheltered coves and grilled fish the length of the coast.",
				Highlights: []string{
					"Kayaking into the sea cave at Benagil",
					"Cliff-top boardwalk over Praia da Marinha's arches",
					"Piri-piri chicken at a roadside churrasqueira",
				},
			},
			{
				City: "Budapest", Country: "Hungary", Region: "europe", Type: "city",
				Themes:             []string{"culture", "nightlife", "relaxation", "food"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(2.3),
				Summary:            "Grand Danube capital of thermal baths and ruin bars.",
				Highlights: []string{
					"Outdoor soak at Széchenyi baths as steam meets cold air",
					"Ruin bars spilling through crumbling courtyards in the old ghetto",
					"Parliament's dome glowing over the Danube at night",
				},
			},
		},
		LongHaul: []RawCandidate{
			{
				City: "Bangkok", Country: "Thailand", Region: "southeast_asia", Type: "city",
				Themes:             []string{"food", "culture", "nightlife", "shopping"},
				BestSeasons:        []string{"winter"},
				ApproxNonstopHours: hoursOf(11.5),
				Summary:            "Street food capital threaded with canals, temples and night markets.",
				Highlights: []string{
					"Boat noodles eaten canal-side in Talad Rot Fai market",
					"Wat Arun's porcelain spires catching the sunset",
					"Longtail boat weaving through Thonburi's klongs",
				},
			},
			{
				City: "Tokyo", Country: "Japan", Region: "east_asia", Type: "city",
				Themes:             []string{"food", "culture", "shopping", "museums"},
				BestSeasons:        []string{"spring", "autumn"},
				ApproxNonstopHours: hoursOf(11.8),
				Summary:            "Neon intensity and temple calm, with the world's deepest food scene.",
				Highlights: []string{
					"Dawn tuna auction energy at Toyosu then sushi breakfast",
					"Shibuya crossing's choreography from above",
					"Incense smoke drifting through Senso-ji at opening time",
				},
			},
			{
				City: "Bali", Country: "Indonesia", Region: "southeast_asia", Type: "beach",
				Themes:             []string{"beach", "nature", "relaxation", "adventure", "romance"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(15.5),
				Summary:            "Volcano sunrises, rice-terrace green and surf at every ability level.",
				Highlights: []string{
					"Sunrise trek up Mount Batur above a sea of cloud",
					"Tegallalang rice terraces dripping after morning rain",
					"Beginner waves rolling into Batu Bolong beach",
				},
			},
			{
				City: "Cape Town", Country: "South Africa", Region: "sub_saharan_africa", Type: "nature",
				Themes:             []string{"nature", "adventure", "food", "beach"},
				BestSeasons:        []string{"spring", "summer", "autumn"},
				ApproxNonstopHours: hoursOf(11.5),
				Summary:            "Table Mountain drama with penguins, vineyards and two oceans.",
				Highlights: []string{
					"Cableway up Table Mountain as the cloud tablecloth rolls in",
					"African penguins waddling across Boulders Beach",
					"Wine tasting beneath the crags of Stellenbosch",
				},
			},
			{
				City: "New York", Country: "United States", Region: "north_america", Type: "city",
				Themes:             []string{"museums", "food", "nightlife", "shopping", "culture"},
				BestSeasons:        []string{"spring", "autumn"},
				ApproxNonstopHours: hoursOf(8.0),
				Summary:            "The vertical city: museums, bagels and a different neighborhood every block.",
				Highlights: []string{
					"The Met's Temple of Dendur flooded with morning light",
					"Walking the High Line as the city slides past",
					"Late-night jazz in a Village basement club",
				},
			},
			{
				City: "Dubai", Country: "United Arab Emirates", Region: "middle_east", Type: "city",
				Themes:             []string{"shopping", "beach", "family", "food"},
				BestSeasons:        []string{"winter", "autumn"},
				ApproxNonstopHours: hoursOf(6.8),
				Summary:            "Desert superlatives: tallest towers, old-creek souks, winter sun.",
				Highlights: []string{
					"Burj Khalifa's observation deck above the haze line",
					"Abra crossing the creek to the spice souk's sacks of saffron",
					"Dune bashing at sunset followed by camp barbecue",
				},
			},
			{
				City: "Mauritius", Country: "Mauritius", Region: "indian_ocean", Type: "beach",
				Themes:             []string{"beach", "relaxation", "romance", "family", "nature"},
				BestSeasons:        []string{"spring", "autumn", "winter"},
				ApproxNonstopHours: hoursOf(11.2),
				Summary:            "Lagoon island of powder beaches, creole kitchens and green mountains.",
				Highlights: []string{
					"Snorkelling the turquoise lagoon at Trou aux Biches",
					"Seven Coloured Earths' striped dunes at Chamarel",
					"Street dholl puri eaten hot from a Port Louis stall",
				},
			},
			{
				City: "Bridgetown", Country: "Barbados", Region: "caribbean", Type: "beach",
				Themes:             []string{"beach", "relaxation", "food", "nightlife"},
				BestSeasons:        []string{"winter", "spring"},
				ApproxNonstopHours: hoursOf(8.7),
				Summary:            "Easy-going Caribbean base of rum shops and calm west-coast water.",
				Highlights: []string{
					"Swimming with turtles off Carlisle Bay",
					"Friday night fish fry at Oistins with the grills smoking",
					"Rum tasting at the island's oldest distillery",
				},
			},
			{
				City: "Rio de Janeiro", Country: "Brazil", Region: "south_america", Type: "beach",
				Themes:             []string{"beach", "nightlife", "nature", "adventure"},
				BestSeasons:        []string{"spring", "autumn"},
				ApproxNonstopHours: hoursOf(11.4),
				Summary:            "Beach city squeezed between granite peaks and Atlantic forest.",
				Highlights: []string{
					"Sunset from Arpoador rock with applause along Ipanema",
					"Cog train up through forest to Christ the Redeemer",
					"Samba spilling out of Pedra do Sal on a Monday night",
				},
			},
			{
				City: "Zanzibar", Country: "Tanzania", Region: "sub_saharan_africa", Type: "beach",
				Themes:             []string{"beach", "culture", "relaxation", "romance"},
				BestSeasons:        []string{"summer", "winter"},
				ApproxNonstopHours: hoursOf(9.5),
				Summary:            "Spice-island mix of Stone Town alleys and tide-swept white sand.",
				Highlights: []string{
					"Carved doors and coffee vendors in Stone Town's maze",
					"Kite surfers skimming Paje's endless shallow flats",
					"Night market seafood grills on Forodhani Gardens",
				},
			},
			{
				City: "Malé", Country: "Maldives", Region: "indian_ocean", Type: "beach",
				Themes:             []string{"beach", "romance", "relaxation"},
				BestSeasons:        []string{"winter", "spring"},
				ApproxNonstopHours: hoursOf(10.2),
				Summary:            "Atoll scatter of sandbanks and house reefs straight off the villa deck.",
				Highlights: []string{
					"Seaplane hop over rings of turquoise atolls",
					"House-reef snorkelling with reef sharks at dusk",
					"Bioluminescent plankton glowing along the night shoreline",
				},
			},
			{
				City: "Cancún", Country: "Mexico", Region: "central_america", Type: "beach",
				Themes:             []string{"beach", "family", "nightlife", "culture"},
				BestSeasons:        []string{"winter", "spring"},
				ApproxNonstopHours: hoursOf(10.0),
				Summary:            "Caribbean-coast resorts with cenotes and Maya ruins in day-trip range.",
				Highlights: []string{
					"Swimming in the open-ceiling cenote at Ik Kil",
					"El Castillo pyramid rising over Chichén Itzá's plaza",
					"White sand and gin-clear water on Isla Mujeres",
				},
			},
		},
	}
}
