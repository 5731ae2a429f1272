package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/emoji-desktop/internal/board"
	"github.com/ytget/emoji-desktop/internal/config"
	"github.com/ytget/emoji-desktop/internal/fetch"
	"github.com/ytget/emoji-desktop/internal/logger"
	"github.com/ytget/emoji-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.emoji-desktop"
	AppName = "Emoji Desktop"

	WindowWidth  = board.DefaultWidth
	WindowHeight = board.DefaultHeight + 60
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	zerolog.SetGlobalLevel(logger.ParseLevel(settings.GetLogLevel()))
	log := logger.NewConsole(zerolog.TraceLevel)
	log.Info().Str("version", version).Msg("emoji desktop starting")

	// Apply desk theme
	myApp.Settings().SetTheme(ui.NewDeskTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Initialize services
	fetchSvc := fetch.NewService(
		settings.GetListingURL(),
		settings.GetFileSuffix(),
		settings.GetRequestTimeout(),
		logger.Component(log, "fetch"),
	)

	desk := board.New(board.DefaultWidth, board.DefaultHeight, logger.Component(log, "board"))
	desk.SetSVGSize(settings.GetSVGSize())
	desk.SetAutoDouble(settings.GetAutoDouble())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, settings, fetchSvc, desk, logger.Component(log, "ui"))
	myWindow.SetOnClosed(rootUI.Close)

	// Show and run
	myWindow.ShowAndRun()
}
