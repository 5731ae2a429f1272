package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/emoji-desktop/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	listingURLEntry  *widget.Entry
	fileSuffixEntry  *widget.Entry
	timeoutEntry     *widget.Entry
	scaleFactorEntry *widget.Entry
	backgroundEntry  *widget.Entry
	svgSizeEntry     *widget.Entry
	autoDoubleCheck  *widget.Check
	languageSelect   *widget.Select
	logLevelSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to the preferences.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.listingURLEntry = widget.NewEntry()
	sd.listingURLEntry.SetPlaceHolder(config.DefaultListingURL)

	sd.fileSuffixEntry = widget.NewEntry()
	sd.fileSuffixEntry.SetPlaceHolder(config.DefaultFileSuffix)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-300")

	sd.scaleFactorEntry = widget.NewEntry()
	sd.scaleFactorEntry.SetPlaceHolder("0.1-10")

	// Background image selection
	sd.backgroundEntry = widget.NewEntry()
	sd.backgroundEntry.SetPlaceHolder(config.DefaultBackgroundPath)
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseBackground)
	backgroundRow := container.NewBorder(nil, nil, nil, browseBtn, sd.backgroundEntry)

	sd.svgSizeEntry = widget.NewEntry()
	sd.svgSizeEntry.SetPlaceHolder("0-1024")

	sd.autoDoubleCheck = widget.NewCheck(text(KeyAutoDouble), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(text(KeyFetchSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyListingURL)+":"),
		sd.listingURLEntry,

		widget.NewLabel(text(KeyFileSuffix)+":"),
		sd.fileSuffixEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyBoardSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyScaleFactor)+":"),
		sd.scaleFactorEntry,

		widget.NewLabel(text(KeyBackgroundPath)+":"),
		backgroundRow,

		widget.NewLabel(text(KeySVGSize)+":"),
		sd.svgSizeEntry,

		sd.autoDoubleCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyGeneralSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.listingURLEntry.SetText(sd.settings.GetListingURL())
	sd.fileSuffixEntry.SetText(sd.settings.GetFileSuffix())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.scaleFactorEntry.SetText(strconv.FormatFloat(sd.settings.GetScaleFactor(), 'g', -1, 64))
	sd.backgroundEntry.SetText(sd.settings.GetBackgroundPath())
	sd.svgSizeEntry.SetText(strconv.Itoa(sd.settings.GetSVGSize()))
	sd.autoDoubleCheck.SetChecked(sd.settings.GetAutoDouble())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseBackground picks the background image file
func (sd *SettingsDialog) onBrowseBackground() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.backgroundEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the entered values. Empty or unparsable fields keep the
// stored value, except the background path where empty disables the
// background. Out-of-range numbers are clamped by Settings.
func (sd *SettingsDialog) apply() {
	if sd.listingURLEntry.Text != "" {
		sd.settings.SetListingURL(sd.listingURLEntry.Text)
	}

	if sd.fileSuffixEntry.Text != "" {
		sd.settings.SetFileSuffix(sd.fileSuffixEntry.Text)
	}

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	if factor, err := strconv.ParseFloat(sd.scaleFactorEntry.Text, 64); err == nil {
		sd.settings.SetScaleFactor(factor)
	}

	sd.settings.SetBackgroundPath(sd.backgroundEntry.Text)

	if size, err := strconv.Atoi(sd.svgSizeEntry.Text); err == nil {
		sd.settings.SetSVGSize(size)
	}

	sd.settings.SetAutoDouble(sd.autoDoubleCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}
}
