package persona

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPersona имя persona-файла, используемого как fallback
const DefaultPersona = "default"

// businessNamePlaceholder плейсхолдер в persona-шаблонах
const businessNamePlaceholder = "[Business Name]"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Service сервис загрузки persona-шаблонов голосового агента.
// Persona - текстовый файл <name>.txt с инструкциями для модели;
// при отсутствии запрошенной persona используется default
type Service struct {
	personasDir string
	logger      Logger
}

// NewService создает новый экземпляр сервиса persona
func NewService(personasDir string, logger Logger) *Service {
	return &Service{
		personasDir: personasDir,
		logger:      logger,
	}
}

// LoadPersona загружает persona по имени (без расширения .txt).
// Если файл не найден, подставляется default; если нет и его -
// возвращается ErrPersonaNotFound
func (s *Service) LoadPersona(name string) (string, error) {
	path := filepath.Join(s.personasDir, name+".txt")

	data, err := os.ReadFile(path)
	if err != nil && name != DefaultPersona {
		s.logger.Warn("LoadPersona: persona %q not found, using default", name)
		path = filepath.Join(s.personasDir, DefaultPersona+".txt")
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPersonaNotFound, path)
	}

	return string(data), nil
}

// InjectBusinessContext подставляет название бизнеса в шаблон и добавляет
// секцию с контекстом текущей сессии (часы работы, дата, время)
func (s *Service) InjectBusinessContext(personaText, businessName string, businessInfo map[string]string) string {
	result := personaText

	if businessName != "" {
		result = strings.ReplaceAll(result, businessNamePlaceholder, businessName)
	}

	if len(businessInfo) > 0 {
		keys := make([]string, 0, len(businessInfo))
		for key := range businessInfo {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString("\n\n## Business Context (Current Session)\n")
		for _, key := range keys {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", titleFromKey(key), businessInfo[key]))
		}
		result += b.String()
	}

	return result
}

// SystemPrompt собирает полный системный промпт: persona плюс бизнес-контекст
func (s *Service) SystemPrompt(name, businessName string, businessInfo map[string]string) (string, error) {
	personaText, err := s.LoadPersona(name)
	if err != nil {
		return "", err
	}
	return s.InjectBusinessContext(personaText, businessName, businessInfo), nil
}

// ListPersonas возвращает имена доступных persona (без расширения)
func (s *Service) ListPersonas() []string {
	entries, err := os.ReadDir(s.personasDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// titleFromKey превращает snake_case ключ в заголовок: current_date -> Current Date
func titleFromKey(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
