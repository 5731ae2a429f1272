package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyDisplayImage     = "display_image"
	KeyGroupImages      = "group_images"
	KeyChangeSize       = "change_size"
	KeyChangeColour     = "change_colour"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySaveSnapshot     = "save_snapshot"
	KeySnapshotSaved    = "snapshot_saved"
	KeyPickColour       = "pick_colour"
	KeyPickColourHint   = "pick_colour_hint"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyListing          = "listing"
	KeyDownloading      = "downloading"
	KeyImagePlaced      = "image_placed"
	KeyNothingToGroup   = "nothing_to_group"
	KeyImagesGrouped    = "images_grouped"
	KeyImagesScaled     = "images_scaled"
	KeyImagesRecolored  = "images_recolored"
	KeyErrFetchFailed   = "err_fetch_failed"
	KeyErrNoImages      = "err_no_images"
	KeyErrDecode        = "err_decode"
	KeyErrScale         = "err_scale"
	KeyErrTooLarge      = "err_too_large"
	KeyErrSnapshot      = "err_snapshot"
	KeyErrUnknown       = "err_unknown"
	KeyListingURL       = "listing_url"
	KeyFileSuffix       = "file_suffix"
	KeyScaleFactor      = "scale_factor"
	KeyBackgroundPath   = "background_path"
	KeyRequestTimeout   = "request_timeout"
	KeySVGSize          = "svg_size"
	KeyAutoDouble       = "auto_double"
	KeyLogLevel         = "log_level"
	KeyFetchSettings    = "fetch_settings"
	KeyBoardSettings    = "board_settings"
	KeyGeneralSettings  = "general_settings"
	KeyBackgroundFailed = "background_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Emoji Desktop",
		KeyDisplayImage:     "1 DISPLAY IMAGE",
		KeyGroupImages:      "2 GROUP IMAGES",
		KeyChangeSize:       "3 CHANGE SIZE",
		KeyChangeColour:     "4 CHANGE COLOUR",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySaveSnapshot:     "Save snapshot...",
		KeySnapshotSaved:    "Snapshot saved",
		KeyPickColour:       "Background colour",
		KeyPickColourHint:   "Shown through transparent pixels of every image",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyListing:          "Listing images...",
		KeyDownloading:      "Downloading image...",
		KeyImagePlaced:      "Image placed",
		KeyNothingToGroup:   "At least two images are needed to group",
		KeyImagesGrouped:    "Images grouped",
		KeyImagesScaled:     "Images resized",
		KeyImagesRecolored:  "Background colour changed",
		KeyErrFetchFailed:   "Failed to fetch image",
		KeyErrNoImages:      "No images available in the listing",
		KeyErrDecode:        "Downloaded file is not a readable image",
		KeyErrScale:         "Failed to resize images",
		KeyErrTooLarge:      "Images would become too large",
		KeyErrSnapshot:      "Failed to save snapshot",
		KeyErrUnknown:       "Error",
		KeyListingURL:       "Listing URL",
		KeyFileSuffix:       "File Suffix",
		KeyScaleFactor:      "Scale Factor",
		KeyBackgroundPath:   "Background Image",
		KeyRequestTimeout:   "Request Timeout (seconds)",
		KeySVGSize:          "SVG Render Size (0 = native)",
		KeyAutoDouble:       "Double images whenever their size changes",
		KeyLogLevel:         "Log Level",
		KeyFetchSettings:    "Fetch Settings",
		KeyBoardSettings:    "Board Settings",
		KeyGeneralSettings:  "Interface Settings",
		KeyBackgroundFailed: "Background image not loaded",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Эмодзи на столе",
		KeyDisplayImage:     "1 ПОКАЗАТЬ КАРТИНКУ",
		KeyGroupImages:      "2 СГРУППИРОВАТЬ",
		KeyChangeSize:       "3 ИЗМЕНИТЬ РАЗМЕР",
		KeyChangeColour:     "4 ИЗМЕНИТЬ ЦВЕТ",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySaveSnapshot:     "Сохранить снимок...",
		KeySnapshotSaved:    "Снимок сохранён",
		KeyPickColour:       "Цвет фона",
		KeyPickColourHint:   "Виден сквозь прозрачные пиксели картинок",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyListing:          "Получение списка...",
		KeyDownloading:      "Загрузка картинки...",
		KeyImagePlaced:      "Картинка добавлена",
		KeyNothingToGroup:   "Для группировки нужно минимум две картинки",
		KeyImagesGrouped:    "Картинки сгруппированы",
		KeyImagesScaled:     "Размер изменён",
		KeyImagesRecolored:  "Цвет фона изменён",
		KeyErrFetchFailed:   "Не удалось загрузить картинку",
		KeyErrNoImages:      "В списке нет картинок",
		KeyErrDecode:        "Загруженный файл не является картинкой",
		KeyErrScale:         "Не удалось изменить размер",
		KeyErrTooLarge:      "Картинки стали бы слишком большими",
		KeyErrSnapshot:      "Не удалось сохранить снимок",
		KeyErrUnknown:       "Ошибка",
		KeyListingURL:       "URL списка",
		KeyFileSuffix:       "Суффикс файла",
		KeyScaleFactor:      "Коэффициент масштаба",
		KeyBackgroundPath:   "Фоновое изображение",
		KeyRequestTimeout:   "Таймаут запроса (секунды)",
		KeySVGSize:          "Размер SVG (0 = исходный)",
		KeyAutoDouble:       "Удваивать картинки при изменении размера",
		KeyLogLevel:         "Уровень логов",
		KeyFetchSettings:    "Загрузка",
		KeyBoardSettings:    "Холст",
		KeyGeneralSettings:  "Интерфейс",
		KeyBackgroundFailed: "Фоновое изображение не загружено",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Emoji Desktop",
		KeyDisplayImage:     "1 MOSTRAR IMAGEM",
		KeyGroupImages:      "2 AGRUPAR IMAGENS",
		KeyChangeSize:       "3 MUDAR TAMANHO",
		KeyChangeColour:     "4 MUDAR COR",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySaveSnapshot:     "Salvar captura...",
		KeySnapshotSaved:    "Captura salva",
		KeyPickColour:       "Cor de fundo",
		KeyPickColourHint:   "Visível pelos pixels transparentes de cada imagem",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyListing:          "Listando imagens...",
		KeyDownloading:      "Baixando imagem...",
		KeyImagePlaced:      "Imagem adicionada",
		KeyNothingToGroup:   "São necessárias pelo menos duas imagens para agrupar",
		KeyImagesGrouped:    "Imagens agrupadas",
		KeyImagesScaled:     "Imagens redimensionadas",
		KeyImagesRecolored:  "Cor de fundo alterada",
		KeyErrFetchFailed:   "Falha ao baixar imagem",
		KeyErrNoImages:      "Nenhuma imagem disponível na listagem",
		KeyErrDecode:        "O arquivo baixado não é uma imagem legível",
		KeyErrScale:         "Falha ao redimensionar imagens",
		KeyErrTooLarge:      "As imagens ficariam grandes demais",
		KeyErrSnapshot:      "Falha ao salvar captura",
		KeyErrUnknown:       "Erro",
		KeyListingURL:       "URL da listagem",
		KeyFileSuffix:       "Sufixo do arquivo",
		KeyScaleFactor:      "Fator de escala",
		KeyBackgroundPath:   "Imagem de fundo",
		KeyRequestTimeout:   "Tempo limite (segundos)",
		KeySVGSize:          "Tamanho do SVG (0 = nativo)",
		KeyAutoDouble:       "Dobrar imagens quando o tamanho mudar",
		KeyLogLevel:         "Nível de log",
		KeyFetchSettings:    "Download",
		KeyBoardSettings:    "Tela",
		KeyGeneralSettings:  "Interface",
		KeyBackgroundFailed: "Imagem de fundo não carregada",
	}
}
