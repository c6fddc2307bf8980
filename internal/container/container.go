package container

import (
	"context"
	"log"

	app "cube-scanner/internal/application"
	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
	"cube-scanner/internal/i18n"
)

type Container struct {
	Session      *app.Session
	SolveService *app.SolveService
	Scanner      *app.Scanner
}

// Options — режимы работы сканера
type Options struct {
	Autoscan  bool
	Normalize bool
	Distance  entity.DistanceFunc
	Transport port.Transport
	Notifier  port.Notifier
}

func New(settings port.SettingsRepository, detector port.GridDetector, sampler port.ColorSampler, solver port.Solver, printer *i18n.Printer, opts Options) *Container {
	session := app.NewSession(entity.DefaultPalette().WithDistance(opts.Distance))

	solveService := app.NewSolveService(solver, settings, printer,
		app.WithTransport(opts.Transport),
		app.WithNotifier(opts.Notifier),
		app.WithNormalize(opts.Normalize),
	)
	scanner := app.NewScanner(detector, sampler, session, solveService, settings, opts.Autoscan)

	return &Container{
		Session:      session,
		SolveService: solveService,
		Scanner:      scanner,
	}
}

// ResolveLocale выбирает локаль: флаг, затем переменная окружения, затем
// сохранённая, иначе en. Локаль из флага сохраняется.
func ResolveLocale(ctx context.Context, settings port.SettingsRepository, flag, env string) string {
	if flag != "" {
		if settings != nil {
			if err := settings.SetLocale(ctx, flag); err != nil {
				log.Printf("Failed to save locale: %v", err)
			}
		}
		return flag
	}
	if env != "" {
		return env
	}
	if settings != nil {
		locale, ok, err := settings.Locale(ctx)
		if err != nil {
			log.Printf("Failed to load locale: %v", err)
		} else if ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}
