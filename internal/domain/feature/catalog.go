package feature

// Canonical labels as stored on homestay records. Keys of the keyword maps
// are lowercase informal tokens users actually type; several keys map to the
// same label. The maps are package-level and read-only after init, so they
// are safe for unlimited concurrent readers.

var (
	labelTrekking  = mustLabel("Trekking, Climbing & Hiking Routes", "ट्रेकिङ, आरोहण तथा हाइकिङ मार्गहरू", CategoryAttraction)
	labelFishing   = mustLabel("Fishing & Boating Spots", "माछा मार्ने तथा डुङ्गा चलाउने स्थानहरू", CategoryAttraction)
	labelWildlife  = mustLabel("Wildlife & Bird Watching", "वन्यजन्तु तथा चराचुरुङ्गी अवलोकन", CategoryAttraction)
	labelWaterfall = mustLabel("Waterfalls & Caves", "झरना तथा गुफाहरू", CategoryAttraction)
	labelTemple    = mustLabel("Temples & Monasteries", "मन्दिर तथा गुम्बाहरू", CategoryAttraction)
	labelLake      = mustLabel("Lakes & Ponds", "ताल तथा पोखरीहरू", CategoryAttraction)
	labelViewpoint = mustLabel("Himalayan Views & Sunrise Points", "हिमाली दृश्य तथा सूर्योदय स्थलहरू", CategoryAttraction)
	labelMuseum    = mustLabel("Museums & Historical Sites", "सङ्ग्रहालय तथा ऐतिहासिक स्थलहरू", CategoryAttraction)

	labelWifi        = mustLabel("Internet & Wi-Fi Connectivity", "इन्टरनेट तथा वाई-फाई सुविधा", CategoryInfrastructure)
	labelElectricity = mustLabel("Electricity & Solar Power", "बिजुली तथा सौर्य ऊर्जा", CategoryInfrastructure)
	labelRoad        = mustLabel("Road Access & Transportation", "सडक पहुँच तथा यातायात", CategoryInfrastructure)
	labelWater       = mustLabel("Clean Drinking Water", "सफा खानेपानी", CategoryInfrastructure)
	labelToilet      = mustLabel("Toilets & Sanitation", "शौचालय तथा सरसफाइ", CategoryInfrastructure)
	labelNetwork     = mustLabel("Mobile Network Coverage", "मोबाइल नेटवर्क कभरेज", CategoryInfrastructure)
	labelHealthPost  = mustLabel("Health Post & First Aid", "स्वास्थ्य चौकी तथा प्राथमिक उपचार", CategoryInfrastructure)

	labelGuide    = mustLabel("Local Guides & Porters", "स्थानीय गाइड तथा भरियाहरू", CategoryService)
	labelCulture  = mustLabel("Cultural Programs & Dances", "सांस्कृतिक कार्यक्रम तथा नृत्यहरू", CategoryService)
	labelCuisine  = mustLabel("Traditional Local Cuisine", "परम्परागत स्थानीय परिकार", CategoryService)
	labelWelcome  = mustLabel("Welcome & Farewell Ceremonies", "स्वागत तथा बिदाइ समारोह", CategoryService)
	labelSouvenir = mustLabel("Souvenirs & Local Handicrafts", "सम्झना उपहार तथा स्थानीय हस्तकला", CategoryService)
	labelCamping  = mustLabel("Camping & Picnic Arrangements", "क्याम्पिङ तथा वनभोज व्यवस्था", CategoryService)
)

var attractionKeywords = map[string]Label{
	"hiking":        labelTrekking,
	"hike":          labelTrekking,
	"trekking":      labelTrekking,
	"trek":          labelTrekking,
	"climbing":      labelTrekking,
	"fishing":       labelFishing,
	"boating":       labelFishing,
	"wildlife":      labelWildlife,
	"birds":         labelWildlife,
	"bird watching": labelWildlife,
	"safari":        labelWildlife,
	"jungle":        labelWildlife,
	"waterfall":     labelWaterfall,
	"waterfalls":    labelWaterfall,
	"cave":          labelWaterfall,
	"caves":         labelWaterfall,
	"temple":        labelTemple,
	"temples":       labelTemple,
	"monastery":     labelTemple,
	"gumba":         labelTemple,
	"stupa":         labelTemple,
	"lake":          labelLake,
	"lakes":         labelLake,
	"pond":          labelLake,
	"mountain view": labelViewpoint,
	"sunrise":       labelViewpoint,
	"himalaya":      labelViewpoint,
	"viewpoint":     labelViewpoint,
	"museum":        labelMuseum,
	"historical":    labelMuseum,
	"heritage":      labelMuseum,
}

var infrastructureKeywords = map[string]Label{
	"wifi":           labelWifi,
	"wi-fi":          labelWifi,
	"internet":       labelWifi,
	"electricity":    labelElectricity,
	"solar":          labelElectricity,
	"power":          labelElectricity,
	"road":           labelRoad,
	"roads":          labelRoad,
	"transportation": labelRoad,
	"transport":      labelRoad,
	"drinking water": labelWater,
	"water supply":   labelWater,
	"toilet":         labelToilet,
	"toilets":        labelToilet,
	"sanitation":     labelToilet,
	"bathroom":       labelToilet,
	"mobile network": labelNetwork,
	"phone signal":   labelNetwork,
	"network":        labelNetwork,
	"health post":    labelHealthPost,
	"first aid":      labelHealthPost,
}

var serviceKeywords = map[string]Label{
	"guide":            labelGuide,
	"guides":           labelGuide,
	"porter":           labelGuide,
	"cultural program": labelCulture,
	"cultural":         labelCulture,
	"dance":            labelCulture,
	"local food":       labelCuisine,
	"cuisine":          labelCuisine,
	"organic food":     labelCuisine,
	"local dishes":     labelCuisine,
	"welcome ceremony": labelWelcome,
	"farewell":         labelWelcome,
	"souvenir":         labelSouvenir,
	"souvenirs":        labelSouvenir,
	"handicraft":       labelSouvenir,
	"handicrafts":      labelSouvenir,
	"camping":          labelCamping,
	"picnic":           labelCamping,
	"campfire":         labelCamping,
	"bonfire":          labelCamping,
}

func keywordTable(c Category) map[string]Label {
	switch c {
	case CategoryAttraction:
		return attractionKeywords
	case CategoryInfrastructure:
		return infrastructureKeywords
	case CategoryService:
		return serviceKeywords
	}
	return nil
}
