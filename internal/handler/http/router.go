package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/fms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	Version        string
	LogLevel       slog.Level
}

func NewRouter(opts RouterOptions, payrollHandler PayrollHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fms-cmlabs"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/salary-structures", func(r chi.Router) {
			r.Get("/", payrollHandler.ListSalaryStructures)
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/", payrollHandler.CreateSalaryStructure)

			r.Route("/{employeeId}", func(r chi.Router) {
				r.Get("/", payrollHandler.GetSalaryStructure)
				r.With(chiMiddleware.AllowContentType("application/json")).Put("/", payrollHandler.UpdateSalaryStructure)
				r.Delete("/", payrollHandler.DeleteSalaryStructure)
			})
		})

		r.Route("/payroll", func(r chi.Router) {
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/process", payrollHandler.ProcessPayroll)
			r.Get("/preview", payrollHandler.PreviewSalary)
			r.Get("/sheet", payrollHandler.GetPayrollSheet)
			r.Get("/summary", payrollHandler.GetPayrollSummary)
			r.Get("/export", payrollHandler.ExportPayroll)

			r.Route("/records", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayrollRecords)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayrollRecord)
					r.Delete("/", payrollHandler.DeletePayrollRecord)
					r.With(chiMiddleware.AllowContentType("application/json")).Put("/status", payrollHandler.UpdatePaymentStatus)
					r.Get("/slip", payrollHandler.GetSalarySlip)
				})
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Route("/sites", func(r chi.Router) {
				r.Get("/overview", attendanceHandler.GetSitesOverview)
				r.Get("/{siteId}/period", attendanceHandler.GetSitePeriod)
			})
			r.Get("/employees/{employeeId}/counts", attendanceHandler.GetEmployeeCounts)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
