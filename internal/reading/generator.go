package reading

import (
	"fmt"
	"math/rand"
)

// Analysis is a palm reading in all three supported languages together
// with the confidence the analyzer assigns to it.
type Analysis struct {
	TextBengali     string
	TextHindi       string
	TextEnglish     string
	ConfidenceScore float64
}

// Generator produces palm analyses. The stub implementation synthesizes
// template text in-process; a future implementation may call an external
// analysis service instead, without touching the handler or service layers.
type Generator interface {
	AnalyzePalm() *Analysis
}

const (
	baseConfidence = 0.75
	minConfidence  = 0.60
	maxConfidence  = 0.95
)

// line variants substituted into the reading templates
var (
	heartLineIntensities = []string{"strong", "deep", "clear", "prominent", "well-defined"}
	headLineQualities    = []string{"straight", "curved", "long", "balanced", "focused"}
	lifeLineDescriptions = []string{"vibrant", "continuous", "deep", "sweeping", "unbroken"}
	fateLinePresences    = []string{"distinct", "clear", "emerging", "developing", "pronounced"}

	heartLineBengali = map[string]string{"strong": "শক্তিশালী", "deep": "গভীর", "clear": "স্পষ্ট", "prominent": "উজ্জ্বল", "well-defined": "সুনির্দিষ্ট"}
	heartLineHindi   = map[string]string{"strong": "मजबूत", "deep": "गहरी", "clear": "स्पष्ट", "prominent": "प्रमुख", "well-defined": "सुस्पष्ट"}

	headLineBengali = map[string]string{"straight": "সরল", "curved": "বাঁকানো", "long": "দীর্ঘ", "balanced": "সুষম", "focused": "কেন্দ্রীভূত"}
	headLineHindi   = map[string]string{"straight": "सीधी", "curved": "घुमावदार", "long": "लंबी", "balanced": "संतुलित", "focused": "केंद्रित"}

	lifeLineBengali = map[string]string{"vibrant": "প্রাণবন্ত", "continuous": "অবিচ্ছিন্ন", "deep": "গভীর", "sweeping": "বিস্তৃত", "unbroken": "অখণ্ড"}
	lifeLineHindi   = map[string]string{"vibrant": "जीवंत", "continuous": "निरंतर", "deep": "गहरी", "sweeping": "विस्तृत", "unbroken": "अखंड"}

	fateLineBengali = map[string]string{"distinct": "স্বতন্ত্র", "clear": "স্পষ্ট", "emerging": "উদীয়মান", "developing": "বিকাশমান", "pronounced": "প্রকট"}
	fateLineHindi   = map[string]string{"distinct": "विशिष्ट", "clear": "स्पष्ट", "emerging": "उभरती हुई", "developing": "विकसित होती", "pronounced": "प्रकट"}
)

// StubGenerator synthesizes palmistry readings from templates with
// randomized word substitution and a randomized confidence score.
type StubGenerator struct{}

// NewStubGenerator creates a new stub analysis generator
func NewStubGenerator() *StubGenerator {
	return &StubGenerator{}
}

func (g *StubGenerator) AnalyzePalm() *Analysis {
	heart := heartLineIntensities[rand.Intn(len(heartLineIntensities))]
	head := headLineQualities[rand.Intn(len(headLineQualities))]
	life := lifeLineDescriptions[rand.Intn(len(lifeLineDescriptions))]
	fate := fateLinePresences[rand.Intn(len(fateLinePresences))]

	// Confidence mimics what an image-quality score would look like:
	// base 0.75 plus up to ±0.1 jitter, clamped to [0.6, 0.95].
	confidence := baseConfidence + (rand.Float64()*0.2 - 0.1)
	confidence = max(minConfidence, min(maxConfidence, confidence))

	return &Analysis{
		TextBengali:     bengaliReading(heart, head, life, fate),
		TextHindi:       hindiReading(heart, head, life, fate),
		TextEnglish:     englishReading(heart, head, life, fate),
		ConfidenceScore: confidence,
	}
}

func englishReading(heart, head, life, fate string) string {
	return fmt.Sprintf(`Your palm reading reveals an extraordinary personality and a bright future ahead.

Heart Line: Your %s heart line demonstrates that you are an emotionally rich and compassionate individual. This line indicates deep feelings and sincerity in matters of love and relationships, and family bonds will play an important role in your journey.

Head Line: Your %s head line reveals your intelligence and thinking patterns. Your mental capacity is exceptional, you excel at solving complex problems, and your creativity will propel you toward success in life.

Life Line: Your %s life line promises longevity and excellent health. Your vitality is extraordinary, and your inner strength will help you overcome all obstacles in life.

Fate Line: Your %s fate line indicates that extraordinary success awaits you in your career. Hard work and determination will bring financial stability and social prestige, and leadership qualities are strong within you.

Overall, your palm reading promises a happy, prosperous, and fulfilling life.`, heart, head, life, fate)
}

func bengaliReading(heart, head, life, fate string) string {
	return fmt.Sprintf(`আপনার হস্তরেখা বিশ্লেষণ একটি অসাধারণ ব্যক্তিত্ব এবং উজ্জ্বল ভবিষ্যতের ইঙ্গিত দেয়।

হৃদয়রেখা: আপনার %s হৃদয়রেখা প্রমাণ করে যে আপনি একজন আবেগপ্রবণ এবং দয়ালু ব্যক্তি। প্রেম এবং সম্পর্কের ক্ষেত্রে আপনার গভীর অনুভূতি রয়েছে এবং পারিবারিক বন্ধন আপনার জীবনে গুরুত্বপূর্ণ ভূমিকা পালন করবে।

মস্তিষ্করেখা: আপনার %s মস্তিষ্করেখা আপনার বুদ্ধিমত্তা এবং চিন্তাভাবনার ধরন প্রকাশ করে। আপনার মানসিক ক্ষমতা অসাধারণ এবং আপনার সৃজনশীলতা আপনাকে সফলতার পথে এগিয়ে নিয়ে যাবে।

জীবনরেখা: আপনার %s জীবনরেখা দীর্ঘায়ু এবং উৎকৃষ্ট স্বাস্থ্যের প্রতিশ্রুতি দেয়। আপনার অভ্যন্তরীণ শক্তি আপনাকে জীবনের সকল বাধা অতিক্রম করতে সহায়তা করবে।

ভাগ্যরেখা: আপনার %s ভাগ্যরেখা ইঙ্গিত দেয় যে আপনার ক্যারিয়ারে অসাধারণ সাফল্য অপেক্ষা করছে। আর্থিক স্থিতিশীলতা এবং সামাজিক মর্যাদা আপনার জীবনের অংশ হবে।

সামগ্রিকভাবে, আপনার হস্তরেখা একটি সুখী, সমৃদ্ধ এবং পূর্ণ জীবনের প্রতিশ্রুতি দেয়।`,
		heartLineBengali[heart], headLineBengali[head], lifeLineBengali[life], fateLineBengali[fate])
}

func hindiReading(heart, head, life, fate string) string {
	return fmt.Sprintf(`आपकी हस्तरेखा का विश्लेषण एक असाधारण व्यक्तित्व और उज्ज्वल भविष्य का संकेत देता है।

हृदय रेखा: आपकी %s हृदय रेखा दर्शाती है कि आप एक भावुक और दयालु व्यक्ति हैं। प्रेम और रिश्तों के मामले में आपकी गहरी भावनाएं हैं और पारिवारिक बंधन आपके जीवन में महत्वपूर्ण भूमिका निभाएंगे।

मस्तिष्क रेखा: आपकी %s मस्तिष्क रेखा आपकी बुद्धिमत्ता और सोचने के तरीके को प्रकट करती है। आपकी मानसिक क्षमता असाधारण है और आपकी रचनात्मकता आपको सफलता के रास्ते पर ले जाएगी।

जीवन रेखा: आपकी %s जीवन रेखा लंबी उम्र और उत्कृष्ट स्वास्थ्य का वादा करती है। आपकी आंतरिक शक्ति आपको जीवन की सभी बाधाओं को पार करने में मदद करेगी।

भाग्य रेखा: आपकी %s भाग्य रेखा संकेत देती है कि आपके करियर में असाधारण सफलता का इंतजार है। आर्थिक स्थिरता और सामाजिक प्रतिष्ठा आपके जीवन का हिस्सा होगी।

कुल मिलाकर, आपकी हस्तरेखा एक खुशहाल, समृद्ध और पूर्ण जीवन का वादा करती है।`,
		heartLineHindi[heart], headLineHindi[head], lifeLineHindi[life], fateLineHindi[fate])
}
