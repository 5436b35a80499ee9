package output

import "golang.org/x/text/language"

type hints struct {
	notFound       string
	nothingAtPoint string
	timedOut       string
}

var supportedLanguages = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var hintTable = map[string]hints{
	"en": {
		notFound:       "Check the spelling or call list_windows to see what is open.",
		nothingAtPoint: "The point may be on the desktop background or off-screen.",
		timedOut:       "The element did not appear; try a longer timeout.",
	},
	"de": {
		notFound:       "Schreibweise prüfen oder list_windows aufrufen, um geöffnete Fenster zu sehen.",
		nothingAtPoint: "Der Punkt liegt möglicherweise auf dem Desktophintergrund oder außerhalb des Bildschirms.",
		timedOut:       "Das Element ist nicht erschienen; längeres Timeout versuchen.",
	},
	"fr": {
		notFound:       "Vérifiez l'orthographe ou appelez list_windows pour voir les fenêtres ouvertes.",
		nothingAtPoint: "Le point se trouve peut-être sur le fond du bureau ou hors écran.",
		timedOut:       "L'élément n'est pas apparu ; essayez un délai plus long.",
	},
	"es": {
		notFound:       "Compruebe la ortografía o llame a list_windows para ver las ventanas abiertas.",
		nothingAtPoint: "El punto puede estar en el fondo del escritorio o fuera de la pantalla.",
		timedOut:       "El elemento no apareció; pruebe con un tiempo de espera mayor.",
	},
	"ja": {
		notFound:       "綴りを確認するか、list_windows で開いているウィンドウを確認してください。",
		nothingAtPoint: "その座標はデスクトップの背景か画面外の可能性があります。",
		timedOut:       "要素が表示されませんでした。タイムアウトを長くしてください。",
	},
}

// hintsFor picks the closest supported language for a BCP 47 tag.
func hintsFor(uiLanguage string) hints {
	tag, err := language.Parse(uiLanguage)
	if err != nil {
		return hintTable["en"]
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return hintTable["en"]
	}
	base, _ := supportedLanguages[idx].Base()
	if h, ok := hintTable[base.String()]; ok {
		return h
	}
	return hintTable["en"]
}
