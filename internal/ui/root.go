package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/emoji-desktop/internal/board"
	"github.com/ytget/emoji-desktop/internal/config"
	"github.com/ytget/emoji-desktop/internal/fetch"
	"github.com/ytget/emoji-desktop/internal/logger"
	"github.com/ytget/emoji-desktop/internal/model"
	"github.com/ytget/emoji-desktop/internal/platform"
	"github.com/ytget/emoji-desktop/internal/raster"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	fetcher      fetch.Fetcher
	board        *board.Board
	view         *BoardView
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	// Toolbar
	displayBtn  *widget.Button
	groupBtn    *widget.Button
	sizeBtn     *widget.Button
	colourBtn   *widget.Button
	settingsBtn *widget.Button

	// Fetch state, touched only on the UI goroutine
	fetching    bool
	cancelFetch context.CancelFunc

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int
	autoHide              time.Duration
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, fetcher fetch.Fetcher, b *board.Board, log zerolog.Logger) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		fetcher:      fetcher,
		board:        b,
		settings:     settings,
		localization: localization,
		log:          log,
		autoHide:     NotificationAutoHide,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for fetch progress
	ui.fetcher.SetUpdateCallback(ui.onFetchUpdate)

	ui.view = NewBoardView(b, logger.Component(log, "board_view"))
	ui.loadBackground()
	ui.view.Rebuild()
	ui.setupUI()

	ui.log.Debug().Msg("UI setup completed")
	return ui
}

// Close cancels an in-flight fetch
func (ui *RootUI) Close() {
	if ui.cancelFetch != nil {
		ui.cancelFetch()
	}
}

// View returns the board view
func (ui *RootUI) View() *BoardView {
	return ui.view
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.displayBtn = widget.NewButton(ui.localization.GetText(KeyDisplayImage), ui.onDisplayClick)
	ui.groupBtn = widget.NewButton(ui.localization.GetText(KeyGroupImages), ui.onGroupClick)
	ui.sizeBtn = widget.NewButton(ui.localization.GetText(KeyChangeSize), ui.onSizeClick)
	ui.colourBtn = widget.NewButton(ui.localization.GetText(KeyChangeColour), ui.onColourClick)

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewBorder(nil, nil, nil, ui.settingsBtn,
		container.NewGridWithColumns(4, ui.displayBtn, ui.groupBtn, ui.sizeBtn, ui.colourBtn))

	// Create notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	top := container.NewVBox(toolbar, ui.notificationContainer)

	content := container.NewBorder(
		top,                                      // top
		nil,                                      // bottom
		nil,                                      // left
		nil,                                      // right
		container.NewScroll(ui.view.Container()), // center - the board
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	snapshotItem := fyne.NewMenuItem(ui.localization.GetText(KeySaveSnapshot), ui.onSaveSnapshot)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), snapshotItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.displayBtn.SetText(ui.localization.GetText(KeyDisplayImage))
	ui.groupBtn.SetText(ui.localization.GetText(KeyGroupImages))
	ui.sizeBtn.SetText(ui.localization.GetText(KeyChangeSize))
	ui.colourBtn.SetText(ui.localization.GetText(KeyChangeColour))
}

// onDisplayClick fetches a random image off the UI goroutine and places it
// when the bytes arrive. Clicks during a fetch are ignored.
func (ui *RootUI) onDisplayClick() {
	if ui.fetching {
		return
	}
	ui.fetching = true
	ui.displayBtn.Disable()

	ctx, cancel := context.WithCancel(context.Background())
	ui.cancelFetch = cancel
	go func() {
		data, err := ui.fetcher.FetchRandomImage(ctx)
		fyne.Do(func() {
			ui.finishFetch(data, err)
		})
	}()
}

// finishFetch runs on the UI goroutine after a fetch returned
func (ui *RootUI) finishFetch(data []byte, err error) {
	ui.fetching = false
	ui.displayBtn.Enable()
	if ui.cancelFetch != nil {
		ui.cancelFetch()
		ui.cancelFetch = nil
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		ui.showError(err)
		return
	}

	if err := ui.placeFetched(data); err != nil {
		ui.showError(err)
	}
}

// placeFetched decodes fetched bytes onto the board
func (ui *RootUI) placeFetched(data []byte) error {
	img, err := ui.board.PlaceBytes(data)
	if err != nil {
		return err
	}
	ui.view.Rebuild()
	ui.showNotification(ui.localization.GetText(KeyImagePlaced)+": "+
		img.Overlay.SizeText+MiddleDotSeparator+img.Overlay.ColorText, false)
	return nil
}

// onFetchUpdate reflects fetch progress in the notification panel. It is
// called from the fetch goroutine.
func (ui *RootUI) onFetchUpdate(status model.FetchStatus, err error) {
	key, spinning, ok := fetchNotice(status)
	if !ok {
		return
	}
	fyne.Do(func() {
		ui.showNotification(ui.localization.GetText(key), spinning)
	})
}

// fetchNotice maps an in-progress status to its message. Finished statuses
// are reported by finishFetch instead.
func fetchNotice(status model.FetchStatus) (string, bool, bool) {
	if status.IsFinished() {
		return "", false, false
	}
	switch status {
	case model.FetchStatusListing:
		return KeyListing, status.IsActive(), true
	case model.FetchStatusDownloading:
		return KeyDownloading, status.IsActive(), true
	default:
		return "", false, false
	}
}

// onGroupClick groups every image into one column
func (ui *RootUI) onGroupClick() {
	before := ui.view.Positions()
	if !ui.board.GroupImages() {
		ui.showNotification(ui.localization.GetText(KeyNothingToGroup), false)
		return
	}
	ui.view.Rebuild()
	ui.view.AnimateFrom(before)
	ui.showNotification(ui.localization.GetText(KeyImagesGrouped), false)
}

// onSizeClick scales every image by the configured factor
func (ui *RootUI) onSizeClick() {
	err := ui.board.ScaleAll(ui.settings.GetScaleFactor())
	ui.view.Rebuild()
	if err != nil {
		ui.showError(err)
		return
	}
	ui.showNotification(ui.localization.GetText(KeyImagesScaled), false)
}

// onColourClick asks for a colour and fills every image background with it
func (ui *RootUI) onColourClick() {
	picker := dialog.NewColorPicker(
		ui.localization.GetText(KeyPickColour),
		ui.localization.GetText(KeyPickColourHint),
		ui.recolor,
		ui.window,
	)
	picker.Advanced = true
	picker.Show()
}

// recolor applies the picked colour
func (ui *RootUI) recolor(c color.Color) {
	ui.board.RecolorAll(c)
	ui.view.Rebuild()
	ui.showNotification(ui.localization.GetText(KeyImagesRecolored)+": "+raster.HexColor(c), false)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes stored settings into the fetcher, the board and the
// logger
func (ui *RootUI) applySettings() {
	ui.fetcher.SetListingURL(ui.settings.GetListingURL())
	ui.fetcher.SetFileSuffix(ui.settings.GetFileSuffix())
	ui.fetcher.SetTimeout(ui.settings.GetRequestTimeout())

	ui.board.SetSVGSize(ui.settings.GetSVGSize())
	ui.board.SetAutoDouble(ui.settings.GetAutoDouble())

	zerolog.SetGlobalLevel(logger.ParseLevel(ui.settings.GetLogLevel()))

	if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}

	if !ui.loadBackground() {
		ui.showNotification(ui.localization.GetText(KeyBackgroundFailed), false)
	}
	ui.view.Rebuild()
}

// loadBackground loads the configured background onto the board. It reports
// false when a configured background could not be loaded.
func (ui *RootUI) loadBackground() bool {
	path := ui.settings.GetBackgroundPath()
	if path == "" {
		ui.board.SetBackground(nil)
		return true
	}

	img, resolved, err := LoadBackground(path)
	if err != nil {
		ui.log.Warn().Err(err).Str("path", path).Msg("background not loaded")
		ui.board.SetBackground(nil)
		return false
	}

	ui.board.SetBackground(img)
	ui.log.Info().Str("path", resolved).Msg("background loaded")
	return true
}

// onSaveSnapshot asks for a file and writes the rendered board as PNG
func (ui *RootUI) onSaveSnapshot() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.reportError(KeyErrSnapshot, err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := ui.saveSnapshot(writer); err != nil {
			ui.reportError(KeyErrSnapshot, err)
			return
		}
		ui.showNotification(ui.localization.GetText(KeySnapshotSaved)+": "+writer.URI().Path(), false)
	}, ui.window)

	save.SetFileName(platform.SnapshotFileName(time.Now()))
	if dir, err := platform.GetHomePicturesDir(); err == nil && platform.CreateDirectoryIfNotExists(dir) == nil {
		if location, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			save.SetLocation(location)
		}
	}
	save.Show()
}

// saveSnapshot writes the rendered board to w
func (ui *RootUI) saveSnapshot(w io.Writer) error {
	if err := ui.board.WriteSnapshot(w); err != nil {
		return err
	}
	ui.log.Info().Int("images", ui.board.Len()).Msg("snapshot saved")
	return nil
}

// errorKey maps an error to its localization key
func errorKey(err error) string {
	switch {
	case errors.Is(err, fetch.ErrNoImagesAvailable):
		return KeyErrNoImages
	case errors.Is(err, fetch.ErrFetchFailed):
		return KeyErrFetchFailed
	case errors.Is(err, raster.ErrDecode):
		return KeyErrDecode
	case errors.Is(err, raster.ErrTooLarge):
		return KeyErrTooLarge
	case errors.Is(err, raster.ErrInvalidFactor):
		return KeyErrScale
	default:
		return KeyErrUnknown
	}
}

// showError reports err with the message matching its kind
func (ui *RootUI) showError(err error) {
	ui.reportError(errorKey(err), err)
}

// reportError logs err and shows it in the notification panel and a dialog
func (ui *RootUI) reportError(key string, err error) {
	message := ui.localization.GetText(key)
	ui.log.Error().Err(err).Str("kind", key).Msg("action failed")
	ui.showNotification(message+": "+err.Error(), false)
	dialog.ShowError(fmt.Errorf("%s: %w", message, err), ui.window)
}

// showNotification displays a message in the notification panel under the
// toolbar. When spinning is true, a spinner is shown to indicate background
// activity; otherwise the panel hides itself after the auto hide delay.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	if spinning || ui.autoHide <= 0 {
		return
	}
	time.AfterFunc(ui.autoHide, func() {
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}
