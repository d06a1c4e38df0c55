package models

// Demo fixtures inserted by the seeding engine. Kept as plain data, separate
// from the seeding logic, so tests can reference the same literals.

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

// DemoWatches is the curated set of demo watches ensured by seeding,
// keyed by name.
var DemoWatches = []Watch{
	{
		Name:        "Monaco Heritage Chronograph",
		Brand:       "Monaco Watch Co.",
		Description: strPtr("A square-case chronograph inspired by the spirit of the Riviera."),
		Price:       9200,
		Currency:    "USD",
		Thumbnail:   strPtr("https://images.unsplash.com/photo-1526045612212-70caf35c14df?q=80&w=1600&auto=format&fit=crop"),
		Images: []string{
			"https://images.unsplash.com/photo-1526045612212-70caf35c14df?q=80&w=1600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1511385348-a52b4a160dc2?q=80&w=1600&auto=format&fit=crop",
		},
		Movement:        strPtr("Automatic"),
		Case:            strPtr("Stainless steel 39mm"),
		Strap:           strPtr("Alligator leather"),
		WaterResistance: strPtr("100m"),
		PowerReserve:    strPtr("42h"),
		Complications:   []string{"Chronograph", "Date"},
		Featured:        true,
		InStock:         boolPtr(true),
		Rating:          floatPtr(4.8),
	},
	{
		Name:        "Azur Moonphase",
		Brand:       "Monaco Watch Co.",
		Description: strPtr("Elegant moonphase with a deep azure dial and applied indices."),
		Price:       11800,
		Currency:    "USD",
		Thumbnail:   strPtr("https://images.unsplash.com/photo-1524805444758-089113d48a6d?q=80&w=1600&auto=format&fit=crop"),
		Images: []string{
			"https://images.unsplash.com/photo-1524805444758-089113d48a6d?q=80&w=1600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1518546305927-5a555bb7020a?q=80&w=1600&auto=format&fit=crop",
		},
		Movement:        strPtr("Automatic"),
		Case:            strPtr("18k rose gold 41mm"),
		Strap:           strPtr("Blue calfskin"),
		WaterResistance: strPtr("50m"),
		PowerReserve:    strPtr("70h"),
		Complications:   []string{"Moonphase", "Date"},
		Featured:        true,
		InStock:         boolPtr(true),
		Rating:          floatPtr(4.9),
	},
	{
		Name:        "Port Royale Diver",
		Brand:       "Monaco Watch Co.",
		Description: strPtr("Professional diver with ceramic bezel and luminous markers."),
		Price:       7800,
		Currency:    "USD",
		Thumbnail:   strPtr("https://images.unsplash.com/photo-1516478177764-9fe5bd7e9717?q=80&w=1600&auto=format&fit=crop"),
		Images: []string{
			"https://images.unsplash.com/photo-1516478177764-9fe5bd7e9717?q=80&w=1600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1490367532201-b9bc1dc483f6?q=80&w=1600&auto=format&fit=crop",
		},
		Movement:        strPtr("Automatic"),
		Case:            strPtr("Titanium 42mm"),
		Strap:           strPtr("Rubber"),
		WaterResistance: strPtr("300m"),
		PowerReserve:    strPtr("60h"),
		Complications:   []string{"Helium valve", "Date"},
		Featured:        false,
		InStock:         boolPtr(true),
		Rating:          floatPtr(4.7),
	},
}

// DemoBlogPosts is the curated set of demo blog posts ensured by seeding,
// keyed by (slug, locale).
var DemoBlogPosts = []BlogPost{
	{
		Slug:    "art-of-the-square-case",
		Title:   "The Art of the Square Case",
		Excerpt: "Why the square chronograph became the signature silhouette of the Riviera.",
		Content: "Round cases are forgiving; square cases are honest. Every line of a " +
			"square chronograph has to resolve against the next, which is why so few " +
			"maisons attempt one. Our Heritage Chronograph pairs a 39mm stainless case " +
			"with beveled lugs polished by hand, a dial architecture borrowed from " +
			"1960s dashboard instruments, and a column-wheel movement visible through " +
			"the exhibition back.",
		Tags:      []string{"design", "heritage", "chronograph"},
		Locale:    "en",
		HeroImage: strPtr("https://images.unsplash.com/photo-1526045612212-70caf35c14df?q=80&w=1600&auto=format&fit=crop"),
	},
	{
		Slug:    "diving-the-port-royale",
		Title:   "Diving the Port Royale",
		Excerpt: "Three hundred meters of water resistance, tested where it matters.",
		Content: "A dive watch earns its bezel in open water. We took the Port Royale " +
			"Diver through a season of Mediterranean wrecks: the helium valve, the " +
			"luminous ceramic insert and the titanium case all exist because a dive " +
			"instrument has no room for decoration that does not work. Here is what we " +
			"learned at depth, and why the rubber strap outlasted every bracelet we tried.",
		Tags:      []string{"diving", "titanium", "field-test"},
		Locale:    "en",
		HeroImage: strPtr("https://images.unsplash.com/photo-1516478177764-9fe5bd7e9717?q=80&w=1600&auto=format&fit=crop"),
	},
	{
		Slug:    "uhrmacherkunst-in-monaco",
		Title:   "Uhrmacherkunst in Monaco",
		Excerpt: "Wie eine kleine Manufaktur an der Riviera ihre eigene Formensprache fand.",
		Content: "Monaco ist kein klassischer Uhrmacherstandort, und genau darin liegt " +
			"die Freiheit. Ohne die Last einer hundertjährigen Tradition konnte unsere " +
			"Manufaktur Gehäuseformen, Zifferblätter und Komplikationen neu denken. " +
			"Dieser Beitrag erzählt, wie aus einer Werkstatt über dem Hafen eine " +
			"Kollektion wurde, die Chronograph, Mondphase und Taucheruhr unter einer " +
			"Formensprache vereint.",
		Tags:      []string{"manufaktur", "geschichte"},
		Locale:    "de",
		HeroImage: strPtr("https://images.unsplash.com/photo-1524805444758-089113d48a6d?q=80&w=1600&auto=format&fit=crop"),
	},
	{
		Slug:    "l-heure-bleue-de-la-riviera",
		Title:   "L'heure bleue de la Riviera",
		Excerpt: "Le cadran azur de la Moonphase, entre ciel et Méditerranée.",
		Content: "Il existe une heure, juste après le coucher du soleil, où la mer et le " +
			"ciel partagent le même bleu. C'est cette teinte que nous avons poursuivie " +
			"pour le cadran de l'Azur Moonphase : douze couches de laque translucide, " +
			"des index appliqués à la main et une phase de lune calibrée pour rester " +
			"juste pendant cent vingt-deux ans.",
		Tags:      []string{"moonphase", "design"},
		Locale:    "fr",
		HeroImage: strPtr("https://images.unsplash.com/photo-1518546305927-5a555bb7020a?q=80&w=1600&auto=format&fit=crop"),
	},
}
