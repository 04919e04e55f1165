package arabic

// Curated vocabulary for intent matching and answer classification. These are
// read-only, process-wide tables: data, not control flow. Every Arabic entry
// is stored pre-normalized (no diacritics, hamza folded, taa marbuta as haa)
// so matching against Normalize output is a plain substring test.

// yesPatterns covers formal Arabic, Gulf/Levantine dialect, affirmative
// phrases, English and the numeric/boolean literals.
var yesPatterns = []string{
	// Arabic formal
	"نعم", "اجل", "بلى",
	// Arabic informal / dialectal
	"اي", "ايه", "ايوا", "اكيد", "طبعا", "طبع",
	// Affirmative phrases
	"بكل تاكيد", "بالتاكيد", "موافق", "حسنا", "تمام", "صحيح",
	// English
	"yes", "yeah", "yep", "ok", "okay", "sure", "true",
	// Numeric
	"1",
}

var noPatterns = []string{
	// Arabic formal
	"لا", "كلا", "ليس",
	// Arabic negative
	"ابدا", "مستحيل", "رفض", "خطا",
	// Phrases
	"غير موافق", "لست متاكد",
	// English
	"no", "nope", "nah", "false",
	// Numeric
	"0",
}

// NPSKeywords detects recommendation-likelihood wording in question text:
// Arabic root verb forms of recommend/advise/refer, probability and
// willingness phrasings, question constructions, and English equivalents.
var NPSKeywords = []string{
	// Root verb forms (recommend / advise / refer)
	"توصي", "تنصح", "ترشح", "ترشيح", "تزكي",
	"يوصي", "ينصح", "يرشح", "نوصي", "ننصح",

	// Probability / likelihood phrases
	"احتماليه التوصيه", "احتمال التوصيه", "احتمال ان توصي",
	"مدى احتماليه التوصيه", "مدى احتمال ان تنصح",

	// Willingness / readiness phrases
	"مدى استعدادك للتوصيه", "استعدادك للتوصيه",
	"مدى رغبتك في التوصيه", "رغبتك في التوصيه",
	"استعدادك لترشيح", "مدى استعدادك للترشيح",

	// Question forms
	"هل تنصح", "هل توصي", "هل ترشح",
	"هل ستوصي", "هل ستنصح", "هل سترشح",
	"هل يمكنك التوصيه", "هل يمكن ان توصي",

	// Capability phrases
	"قابليه الترشيح", "قابليه التوصيه",
	"امكانيه التوصيه", "امكانيه الترشيح",

	// Referral / endorsement terms
	"تزكيه", "تاييد", "اقتراح", "دعم",

	// English
	"recommend", "likely to recommend", "likelihood to recommend",
	"would you recommend", "willing to recommend",
	"refer", "referral", "endorse", "suggest",
	"how likely", "probability of recommending",
}

// CSATKeywords detects satisfaction wording in question text.
var CSATKeywords = []string{
	// Satisfaction root forms
	"رضا", "راض", "راضي", "رضاك", "رضاء",
	"مرتاح", "ارتياح", "ارتياحك",

	// Happiness / contentment
	"سعيد", "سعاده", "سعادتك", "مسرور",
	"مبسوط", "فرحان", "فرح", "ابتهاج",

	// Gulf dialect
	"منبسط", "مستانس",

	// Evaluation / assessment
	"تقييم", "تقييمك", "تقدير", "تقديرك",
	"رايك", "رايك في", "وجهه نظرك",

	// Quality
	"جوده", "جوده الخدمه", "مستوى الجوده",
	"نوعيه", "مستوى",

	// Service / experience
	"الخدمه", "خدمه", "خدمتنا", "خدماتنا",
	"تجربه", "تجربتك", "التجربه",
	"مستوى الخدمه", "مستوى التجربه",

	// Impression / opinion
	"انطباع", "انطباعك", "راي", "اعجاب",

	// English
	"satisf", "satisfaction", "happy", "pleased",
	"content", "experience", "quality", "service",
	"impression", "opinion", "rate", "rating",
	"how satisfied", "level of satisfaction",
}

// satisfiedKeywords: excellent, very-good and good tiers all fold into the
// satisfied bucket.
var satisfiedKeywords = []string{
	// Arabic - excellent tier
	"ممتاز", "ممتاز للغايه", "ممتاز جدا", "متميز", "استثنايي",
	"رايع", "رايع جدا", "خرافي", "مذهل", "عظيم",

	// Arabic - very good tier
	"جيد جدا", "جيد للغايه", "حلو", "حلو جدا",
	"طيب", "كويس", "كويس جدا", "تمام",

	// Arabic - good / satisfied tier
	"جيد", "حسن", "لا باس", "لا باس به",
	"راض", "راضي", "راضي جدا", "راضي تماما",
	"مرتاح", "مرتاح جدا", "سعيد", "مبسوط",

	// English
	"excellent", "outstanding", "exceptional", "superb",
	"great", "wonderful", "fantastic", "amazing",
	"very good", "very satisfied", "good", "satisfied",
	"happy", "pleased", "delighted", "content",
}

var neutralKeywords = []string{
	// Arabic
	"محايد", "عادي", "عادي جدا", "متوسط",
	"مقبول", "مقبول نوعا ما", "لا باس", "مش بطال",
	"وسط", "معقول", "ماشي", "ماشي الحال",
	"كذا", "هيك", "يعني", "نص نص",

	// English
	"neutral", "average", "mediocre", "moderate",
	"okay", "ok", "fair", "acceptable",
	"so-so", "neither good nor bad", "middle",
}

var dissatisfiedKeywords = []string{
	// Arabic - strongly dissatisfied
	"سيي جدا", "سيي للغايه", "فظيع", "فظيع جدا",
	"كارثه", "كارثي", "مريع", "بشع", "مقرف",
	"غير مقبول", "غير مقبول نهائيا", "مرفوض",

	// Arabic - dissatisfied
	"سيي", "سيء", "مش كويس", "مو زين",
	"ضعيف", "ضعيف جدا", "رديء", "ردي",
	"غير راض", "غير راضي", "غير راضي ابدا",
	"غير مرتاح", "مش مبسوط", "مو مرتاح",

	// Arabic - emotional responses
	"مستاء", "مستاء جدا", "منزعج", "منزعج جدا",
	"غاضب", "زعلان", "محبط", "يائس",
	"محرج", "مخيب للامال", "مخيب للظن",

	// English
	"terrible", "horrible", "awful", "atrocious",
	"very bad", "very poor", "extremely poor",
	"dissatisfied", "very dissatisfied", "highly dissatisfied",
	"poor", "bad", "unsatisfied", "unhappy",
	"upset", "frustrated", "disappointed", "annoyed",
}
