package i18n

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// translations maps English keys to their Brazilian Portuguese text
var translations = map[string]string{
	// Console
	"ZOMBIE DICE": "ZOMBIE DICE",
	"You are a zombie. Eat %d brains to win.":                                  "Você é um zumbi. Coma %d cérebros para vencer.",
	"Every roll you draw dice from the cup until you hold %d, then roll them.": "A cada rolagem você tira dados do copo até ter %d na mão e então rola.",
	"Brains score. Footsteps are rolled again. Shotguns hurt.":                 "Cérebros pontuam. Pegadas são roladas de novo. Tiros machucam.",
	"Take %d shotgun blasts in one turn and you lose the brains of that turn.": "Leve %d tiros em um turno e você perde os cérebros daquele turno.",
	"Stop whenever you like to keep your brains.":                              "Pare quando quiser para guardar seus cérebros.",
	"How many players? (%d-%d) ":                                               "Quantos jogadores? (%d-%d) ",
	"Name of player %d: ":                                                      "Nome do jogador %d: ",
	"Please type a number between %d and %d.":                                  "Digite um número entre %d e %d.",
	"This cannot be blank.":                                                    "Isto não pode ficar em branco.",
	"Please answer y or n.":                                                    "Responda s ou n.",
	"Play again? (y/n) ":                                                       "Jogar de novo? (s/n) ",
	"Thanks for playing. Braaains!":                                            "Obrigado por jogar. Cérebrooos!",
	"Press ENTER to roll...":                                                   "Pressione ENTER para rolar...",
	"Press ENTER to continue...":                                               "Pressione ENTER para continuar...",
	"=== %s's turn, round %d ===":                                              "=== Vez de %s, rodada %d ===",
	"Score: %d":                                                                "Pontuação: %d",
	"-- Roll %d --":                                                            "-- Rolagem %d --",
	"Dice in the cup: %s":                                                      "Dados no copo: %s",
	"You drew: %s":                                                             "Você tirou: %s",
	"You rolled: %s":                                                           "Você rolou: %s",
	"Brains: %d | Footsteps: %d | Shots: %d of %d":                             "Cérebros: %d | Pegadas: %d | Tiros: %d de %d",
	"Stop now and your score becomes %d.":                                      "Se parar agora sua pontuação vai para %d.",
	"The cup ran dry! These brains go back in, and still count: %s":            "O copo esvaziou! Estes cérebros voltam para o copo e continuam contando: %s",
	"%s's score stays at %d.":                                                  "A pontuação de %s continua em %d.",
	"%s's score is now %d.":                                                    "A pontuação de %s agora é %d.",
	"Draw! %s are tied at %d brains and play another round.":                   "Empate! %s estão empatados com %d cérebros e jogam mais uma rodada.",
	"%s wins with %d brains!":                                                  "%s vence com %d cérebros!",
	"Final standings after %d rounds:":                                         "Classificação final depois de %d rodadas:",
	"%d. %s: %d brains (%d turns, %d busts, %d brains lost)":                   "%d. %s: %d cérebros (%d turnos, %d estouros, %d cérebros perdidos)",
	"%d %s":     "%d %s",
	"empty":     "vazio",
	"green":     "verde",
	"yellow":    "amarelo",
	"red":       "vermelho",
	"BRAIN":     "CÉREBRO",
	"FOOTSTEPS": "PEGADAS",
	"SHOT":      "TIRO",

	// Flavor
	"Round %d. The horde shuffles forward.":              "Rodada %d. A horda se arrasta adiante.",
	"Round %d. Something smells like fresh brains.":      "Rodada %d. Algo cheira a cérebro fresco.",
	"Round %d. Moan if you are hungry!":                  "Rodada %d. Geme quem está com fome!",
	"Tiebreak round %d! Only the hungriest remain.":      "Rodada de desempate %d! Só os mais famintos continuam.",
	"Round %d is a tiebreak. Last zombie standing eats.": "A rodada %d é de desempate. O último zumbi de pé come.",
}

// pluralForms holds messages whose wording depends on a count. Each case
// names its arguments by index.
var pluralForms = []struct {
	key  string
	arg  int
	en   [2]string
	ptBR [2]string
}{
	{
		key:  "Press ENTER to draw %d dice...",
		arg:  1,
		en:   [2]string{"Press ENTER to draw %[1]d die...", "Press ENTER to draw %[1]d dice..."},
		ptBR: [2]string{"Pressione ENTER para tirar %[1]d dado...", "Pressione ENTER para tirar %[1]d dados..."},
	},
	{
		key:  "Keep going? You will draw %d new dice. (y/n) ",
		arg:  1,
		en:   [2]string{"Keep going? You will draw %[1]d new die. (y/n) ", "Keep going? You will draw %[1]d new dice. (y/n) "},
		ptBR: [2]string{"Continuar? Você vai tirar %[1]d dado novo. (s/n) ", "Continuar? Você vai tirar %[1]d dados novos. (s/n) "},
	},
	{
		key:  "BLAM! %s took one shot too many and drops %d brains.",
		arg:  2,
		en:   [2]string{"BLAM! %[1]s took one shot too many and drops %[2]d brain.", "BLAM! %[1]s took one shot too many and drops %[2]d brains."},
		ptBR: [2]string{"BLAM! %[1]s levou um tiro a mais e perde %[2]d cérebro.", "BLAM! %[1]s levou um tiro a mais e perde %[2]d cérebros."},
	},
	{
		key:  "%s was chased off by shotguns, leaving %d brains behind.",
		arg:  2,
		en:   [2]string{"%[1]s was chased off by shotguns, leaving %[2]d brain behind.", "%[1]s was chased off by shotguns, leaving %[2]d brains behind."},
		ptBR: [2]string{"%[1]s foi expulso a tiros e deixou %[2]d cérebro para trás.", "%[1]s foi expulso a tiros e deixou %[2]d cérebros para trás."},
	},
	{
		key:  "Headshot! %s loses this turn's %d brains.",
		arg:  2,
		en:   [2]string{"Headshot! %[1]s loses this turn's %[2]d brain.", "Headshot! %[1]s loses this turn's %[2]d brains."},
		ptBR: [2]string{"Tiro na cabeça! %[1]s perde o %[2]d cérebro deste turno.", "Tiro na cabeça! %[1]s perde os %[2]d cérebros deste turno."},
	},
	{
		key:  "%s shuffles off with %d brains.",
		arg:  2,
		en:   [2]string{"%[1]s shuffles off with %[2]d brain.", "%[1]s shuffles off with %[2]d brains."},
		ptBR: [2]string{"%[1]s se arrasta para longe com %[2]d cérebro.", "%[1]s se arrasta para longe com %[2]d cérebros."},
	},
	{
		key:  "Nom nom! %s banks %d brains.",
		arg:  2,
		en:   [2]string{"Nom nom! %[1]s banks %[2]d brain.", "Nom nom! %[1]s banks %[2]d brains."},
		ptBR: [2]string{"Nham nham! %[1]s guarda %[2]d cérebro.", "Nham nham! %[1]s guarda %[2]d cérebros."},
	},
	{
		key:  "%s knows when to stop and keeps %d brains.",
		arg:  2,
		en:   [2]string{"%[1]s knows when to stop and keeps %[2]d brain.", "%[1]s knows when to stop and keeps %[2]d brains."},
		ptBR: [2]string{"%[1]s sabe a hora de parar e fica com %[2]d cérebro.", "%[1]s sabe a hora de parar e fica com %[2]d cérebros."},
	},
	{
		key:  "%s is the last zombie standing with %d brains!",
		arg:  2,
		en:   [2]string{"%[1]s is the last zombie standing with %[2]d brain!", "%[1]s is the last zombie standing with %[2]d brains!"},
		ptBR: [2]string{"%[1]s é o último zumbi de pé com %[2]d cérebro!", "%[1]s é o último zumbi de pé com %[2]d cérebros!"},
	},
	{
		key:  "All hail %s, eater of %d brains!",
		arg:  2,
		en:   [2]string{"All hail %[1]s, eater of %[2]d brain!", "All hail %[1]s, eater of %[2]d brains!"},
		ptBR: [2]string{"Salve %[1]s, devorador de %[2]d cérebro!", "Salve %[1]s, devorador de %[2]d cérebros!"},
	},
}

func init() {
	if err := register(); err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
}

func register() error {
	for key, text := range translations {
		if err := message.SetString(language.English, key, key); err != nil {
			return err
		}
		if err := message.SetString(language.BrazilianPortuguese, key, text); err != nil {
			return err
		}
	}

	for _, form := range pluralForms {
		if err := message.Set(language.English, form.key, selectOne(form.arg, form.en)); err != nil {
			return err
		}
		if err := message.Set(language.BrazilianPortuguese, form.key, selectOne(form.arg, form.ptBR)); err != nil {
			return err
		}
	}

	return nil
}

func selectOne(arg int, forms [2]string) catalog.Message {
	return plural.Selectf(arg, "%d", "=1", forms[0], "other", forms[1])
}
