package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/collections"
	"adbooth/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateMissingSqft(app); err != nil {
			log.Printf("Warning: sqft migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active company middleware globally
		se.Router.BindFunc(handlers.ActiveCompanyMiddleware(app))

		// ── Company switching ────────────────────────────────────
		se.Router.POST("/companies/{id}/activate", handlers.HandleCompanyActivate(app))
		se.Router.POST("/companies/deactivate", handlers.HandleCompanyDeactivate(app))

		// ── Company CRUD ─────────────────────────────────────────
		se.Router.GET("/companies", handlers.HandleCompanyList(app))
		se.Router.GET("/companies/new", handlers.HandleCompanyCreate(app))
		se.Router.POST("/companies", handlers.HandleCompanySave(app))
		se.Router.GET("/companies/{id}/edit", handlers.HandleCompanyEdit(app))
		se.Router.POST("/companies/{id}/edit", handlers.HandleCompanyUpdate(app))

		// ── Media inventory ──────────────────────────────────────
		se.Router.GET("/assets", handlers.HandleAssetList(app))
		se.Router.GET("/assets/new", handlers.HandleAssetCreate(app))
		se.Router.POST("/assets", handlers.HandleAssetSave(app))
		se.Router.GET("/assets/template", handlers.HandleAssetTemplateDownload(app))
		se.Router.GET("/assets/export/excel", handlers.HandleAssetExportExcel(app))

		// Asset import (upload & validate, commit, error report)
		se.Router.GET("/assets/import", handlers.HandleAssetImportPage(app))
		se.Router.POST("/assets/import", handlers.HandleAssetValidate(app))
		se.Router.POST("/assets/import/commit", handlers.HandleAssetImportCommit(app))
		se.Router.POST("/assets/import/errors", handlers.HandleAssetErrorReport(app))

		// Asset edit/delete (after specific /assets/* routes)
		se.Router.GET("/assets/{id}/edit", handlers.HandleAssetEdit(app))
		se.Router.POST("/assets/{id}/edit", handlers.HandleAssetUpdate(app))
		se.Router.DELETE("/assets/{id}", handlers.HandleAssetDelete(app))

		// ── Campaigns ────────────────────────────────────────────
		se.Router.GET("/campaigns", handlers.HandleCampaignList(app))
		se.Router.GET("/campaigns/new", handlers.HandleCampaignCreate(app))
		se.Router.POST("/campaigns", handlers.HandleCampaignSave(app))
		se.Router.GET("/campaigns/{id}/edit", handlers.HandleCampaignEdit(app))
		se.Router.POST("/campaigns/{id}/edit", handlers.HandleCampaignUpdate(app))
		se.Router.POST("/campaigns/{id}/confirm", handlers.HandleCampaignConfirm(app))
		se.Router.POST("/campaigns/{id}/lines", handlers.HandleCampaignAddLine(app))
		se.Router.POST("/campaigns/{id}/lines/{lineId}", handlers.HandleCampaignLineUpdate(app))
		se.Router.DELETE("/campaigns/{id}/lines/{lineId}", handlers.HandleCampaignLineDelete(app))
		se.Router.GET("/campaigns/{id}/export/excel", handlers.HandleCampaignExportExcel(app))
		se.Router.GET("/campaigns/{id}/export/pdf", handlers.HandleCampaignExportPDF(app))
		se.Router.GET("/campaigns/{id}", handlers.HandleCampaignView(app))
		se.Router.DELETE("/campaigns/{id}", handlers.HandleCampaignDelete(app))

		// ── Plans ────────────────────────────────────────────────
		se.Router.GET("/plans", handlers.HandlePlanList(app))
		se.Router.GET("/plans/new", handlers.HandlePlanCreate(app))
		se.Router.POST("/plans", handlers.HandlePlanSave(app))
		se.Router.GET("/plans/{id}", handlers.HandlePlanView(app))
		se.Router.POST("/plans/{id}/lines", handlers.HandlePlanAddLine(app))
		se.Router.POST("/plans/{id}/convert", handlers.HandlePlanConvert(app))
		se.Router.DELETE("/plans/{id}", handlers.HandlePlanDelete(app))

		// ── Expenses ─────────────────────────────────────────────
		se.Router.GET("/expenses", handlers.HandleExpenseList(app))
		se.Router.GET("/expenses/new", handlers.HandleExpenseCreate(app))
		se.Router.POST("/expenses", handlers.HandleExpenseSave(app))
		se.Router.DELETE("/expenses/{id}", handlers.HandleExpenseDelete(app))

		// ── Vacant media report ──────────────────────────────────
		se.Router.GET("/reports/vacant", handlers.HandleVacantReport(app))
		se.Router.GET("/reports/vacant/export/excel", handlers.HandleVacantReportExcel(app))
		se.Router.GET("/reports/vacant/export/pdf", handlers.HandleVacantReportPDF(app))

		// Redirect home to the inventory
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/assets")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
