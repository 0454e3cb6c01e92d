package content

import (
	"context"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

// Bundled fallback content, served when the remote content store is
// unreachable or empty.
var localFormulas = []*domain.PrayerFormula{
	{
		ID:              "local-1",
		Arabic:          "اللَّهُمَّ اغْفِرْ لَهُ وَارْحَمْهُ وَعَافِهِ وَاعْفُ عَنْهُ",
		Transliteration: "Allahumma ighfir lahu warhamhu wa 'afihi wa'fu 'anhu",
		Translation:     "Ô Allah, pardonne-lui, fais-lui miséricorde, accorde-lui le salut et pardonne-lui",
		Position:        1,
	},
	{
		ID:              "local-2",
		Arabic:          "اللَّهُمَّ أَكْرِمْ نُزُلَهُ وَوَسِّعْ مُدْخَلَهُ وَاغْسِلْهُ بِالْمَاءِ وَالثَّلْجِ وَالْبَرَدِ",
		Transliteration: "Allahumma akrim nuzulahu wa wassi' mudkhalahu waghsilhu bil-ma'i wath-thalji wal-barad",
		Translation:     "Ô Allah, honore sa demeure, élargis son entrée et lave-le avec l'eau, la neige et la grêle",
		Position:        2,
	},
	{
		ID:              "local-3",
		Arabic:          "اللَّهُمَّ أَدْخِلْهُ الْجَنَّةَ وَأَعِذْهُ مِنْ عَذَابِ الْقَبْرِ وَعَذَابِ النَّارِ",
		Transliteration: "Allahumma adkhilhul-jannata wa a'idhhu min 'adhabil-qabri wa 'adhabin-nar",
		Translation:     "Ô Allah, fais-le entrer au Paradis et protège-le du châtiment de la tombe et du châtiment du Feu",
		Position:        3,
	},
}

var localVerses = []*domain.Verse{
	{
		ID:              "local-1",
		Arabic:          "وَبَشِّرِ الصَّابِرِينَ الَّذِينَ إِذَا أَصَابَتْهُم مُّصِيبَةٌ قَالُوا إِنَّا لِلَّهِ وَإِنَّا إِلَيْهِ رَاجِعُونَ",
		Transliteration: "Wa bashshiri as-sabirin. Alladhina idha asabat-hum musibatun qalu inna lillahi wa inna ilayhi raji'un",
		Translation:     "Et annonce la bonne nouvelle aux endurants, qui disent, quand un malheur les atteint : \"Certes nous sommes à Allah, et c'est à Lui que nous retournerons.\"",
		Reference:       "Sourate Al-Baqarah (2:155-156)",
		Position:        1,
	},
	{
		ID:              "local-2",
		Arabic:          "كُلُّ نَفْسٍ ذَائِقَةُ الْمَوْتِ وَإِنَّمَا تُوَفَّوْنَ أُجُورَكُمْ يَوْمَ الْقِيَامَةِ",
		Transliteration: "Kullu nafsin dha'iqatul-mawt. Wa innama tuwaffawna ujurakum yawmal-qiyamah",
		Translation:     "Toute âme goûtera la mort. Et c'est seulement au Jour de la Résurrection que vous recevrez votre entière rétribution.",
		Reference:       "Sourate Ali 'Imran (3:185)",
		Position:        2,
	},
}

// StaticProvider serves the bundled content. It never fails, which makes it
// the terminal element of the fallback chain.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) ListFormulas(ctx context.Context) ([]*domain.PrayerFormula, error) {
	out := make([]*domain.PrayerFormula, len(localFormulas))
	copy(out, localFormulas)
	return out, nil
}

func (p *StaticProvider) ListVerses(ctx context.Context) ([]*domain.Verse, error) {
	out := make([]*domain.Verse, len(localVerses))
	copy(out, localVerses)
	return out, nil
}
