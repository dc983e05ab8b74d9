package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var localeFS embed.FS

// Chaves usadas para propagar idioma e tradutor pelo contexto da requisição
const (
	LanguageContextKey   = "language"
	TranslatorContextKey = "translator"
)

// Translator resolve mensagens traduzidas a partir dos arquivos de locale
// embutidos no binário. As mensagens suportam interpolação via templates Go
// ({{.Field}}, {{.Value}}, etc.).
type Translator struct {
	messages    map[string]map[string]string // [idioma][chave]mensagem
	defaultLang string
}

// New carrega os locales embutidos usando defaultLang como fallback
func New(defaultLang string) (*Translator, error) {
	return newFromFS(localeFS, "locales", defaultLang)
}

func newFromFS(fsys fs.FS, dir, defaultLang string) (*Translator, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	t := &Translator{
		messages:    make(map[string]map[string]string, len(files)),
		defaultLang: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}
		t.messages[lang] = messages
	}

	if _, ok := t.messages[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return t, nil
}

// T traduz uma chave para o idioma informado, caindo para o idioma padrão
// e por fim para a própria chave quando não há tradução
func (t *Translator) T(lang, key string, params ...map[string]interface{}) string {
	message := t.lookup(lang, key)
	if message == "" {
		message = t.lookup(t.defaultLang, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

func (t *Translator) lookup(lang, key string) string {
	if langMessages, ok := t.messages[lang]; ok {
		return langMessages[key]
	}
	return ""
}

// DefaultLanguage retorna o idioma de fallback configurado
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Supports verifica se o idioma possui um arquivo de locale carregado
func (t *Translator) Supports(lang string) bool {
	_, ok := t.messages[lang]
	return ok
}

// Languages retorna os idiomas carregados
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.messages))
	for lang := range t.messages {
		langs = append(langs, lang)
	}
	return langs
}
