package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", handler.Register)
	authGroup.Post("/login", handler.Login)
	authGroup.Get("/me", handler.AuthRequired, handler.Me)

	profileGroup := app.Group("/api/profile", handler.AuthRequired)
	profileGroup.Get("/", handler.GetProfile)
	profileGroup.Put("/", handler.UpdateProfile)

	weightGroup := app.Group("/api/weight", handler.AuthRequired)
	weightGroup.Get("/", handler.ListWeightEntries)
	weightGroup.Post("/", handler.AddWeightEntry)

	periodGroup := app.Group("/api/periods", handler.AuthRequired)
	periodGroup.Post("/start", handler.StartPeriod)
	periodGroup.Post("/end", handler.EndPeriod)
	periodGroup.Get("/active", handler.GetActivePeriod)
	periodGroup.Get("/list", handler.ListPeriods)
	periodGroup.Get("/status", handler.GetPeriodStatus)
	periodGroup.Get("/settings", handler.GetPeriodSettings)
	periodGroup.Put("/settings", handler.UpdatePeriodSettings)
	periodGroup.Delete("/:id", handler.DeletePeriod)

	dayGroup := app.Group("/api/days", handler.AuthRequired)
	dayGroup.Post("/", handler.UpsertDay)
	dayGroup.Get("/actions", handler.DailyActions)
	dayGroup.Get("/:date", handler.GetDay)
	dayGroup.Get("/", handler.ListDays)

	hydrationGroup := app.Group("/api/hydration", handler.AuthRequired)
	hydrationGroup.Get("/today", handler.GetHydrationToday)
	hydrationGroup.Post("/intake", handler.AddHydrationIntake)
	hydrationGroup.Post("/glass", handler.AddHydrationGlass)
	hydrationGroup.Put("/goals", handler.UpdateHydrationGoals)

	app.Get("/api/tips/today", handler.AuthRequired, handler.GetDailyTip)
}
