package messaging

// Message keys double as the English text. Translations live in the i18n
// catalog under the same keys.
var (
	roundStartMessages = []string{
		"Round %d. The horde shuffles forward.",
		"Round %d. Something smells like fresh brains.",
		"Round %d. Moan if you are hungry!",
	}

	tiebreakMessages = []string{
		"Tiebreak round %d! Only the hungriest remain.",
		"Round %d is a tiebreak. Last zombie standing eats.",
	}

	bustMessages = []string{
		"BLAM! %s took one shot too many and drops %d brains.",
		"%s was chased off by shotguns, leaving %d brains behind.",
		"Headshot! %s loses this turn's %d brains.",
	}

	bankMessages = []string{
		"%s shuffles off with %d brains.",
		"Nom nom! %s banks %d brains.",
		"%s knows when to stop and keeps %d brains.",
	}

	winnerMessages = []string{
		"%s is the last zombie standing with %d brains!",
		"All hail %s, eater of %d brains!",
	}
)

// Keys returns every message key the service can produce
func Keys() []string {
	var keys []string
	for _, group := range [][]string{roundStartMessages, tiebreakMessages, bustMessages, bankMessages, winnerMessages} {
		keys = append(keys, group...)
	}
	return keys
}
