package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/advisor"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/artifact"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/rag"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
)

var validate = validator.New()

// Deps bundles the services the HTTP layer exposes. Assistant and
// WeatherAssistant are nil when no LLM provider is configured; their routes
// then answer 503 with setup guidance.
type Deps struct {
	Weather          *weather.Service
	Artifacts        *artifact.Store
	Advisor          *advisor.Generator
	Assistant        *rag.Assistant
	WeatherAssistant *rag.WeatherAssistant
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		country, err := countryQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		text, err := deps.Artifacts.Read(country)
		if err != nil {
			return mapError(err)
		}
		record, err := weather.ParseArtifact(text)
		if err != nil {
			return mapError(err)
		}
		record.Country = country

		return c.JSON(record)
	})

	v1.Post("/weather/refresh", func(c *fiber.Ctx) error {
		var req countryBody
		if err := bindBody(c, &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		record, err := deps.Weather.Fetch(c.Context(), req.Country)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(record)
	})

	v1.Get("/advisory", func(c *fiber.Ctx) error {
		country, err := countryQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		text, err := deps.Advisor.Generate(country)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{
			"country":  country,
			"advisory": text,
		})
	})

	v1.Post("/assistant/ask", func(c *fiber.Ctx) error {
		if deps.Assistant == nil {
			return llmUnavailable()
		}

		var req askBody
		if err := bindBody(c, &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		answer, err := deps.Assistant.Answer(c.Context(), req.Question, nil)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{
			"question": req.Question,
			"answer":   answer,
		})
	})

	v1.Get("/assistant/weather", func(c *fiber.Ctx) error {
		if deps.WeatherAssistant == nil {
			return llmUnavailable()
		}

		country, err := countryQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		answer, err := deps.WeatherAssistant.Advise(c.Context(), country)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{
			"country": country,
			"answer":  answer,
		})
	})
}

// countryBody is the request body for country-scoped POST endpoints.
type countryBody struct {
	Country string `json:"country" validate:"required"`
}

// askBody is the request body for the RAG endpoint.
type askBody struct {
	Question string `json:"question" validate:"required"`
}

func bindBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return validate.Struct(out)
}

func countryQuery(c *fiber.Ctx) (string, error) {
	q := struct {
		Country string `validate:"required"`
	}{Country: c.Query("country")}

	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.Country, nil
}

func llmUnavailable() error {
	return fiber.NewError(fiber.StatusServiceUnavailable,
		"no LLM provider configured; set OPENAI_API_KEY, GROQ_API_KEY or GOOGLE_API_KEY")
}

// mapError translates domain sentinels into HTTP status codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, artifact.ErrNoData):
		return fiber.NewError(fiber.StatusNotFound, "no weather data for requested country; fetch it first")
	case errors.Is(err, weather.ErrUnknownCountry):
		return fiber.NewError(fiber.StatusNotFound, "unknown country")
	case errors.Is(err, weather.ErrMalformedArtifact):
		return fiber.NewError(fiber.StatusInternalServerError, "stored weather data is malformed")
	case errors.Is(err, weather.ErrNoAPIKey):
		return fiber.NewError(fiber.StatusServiceUnavailable, "weather provider not configured; set OPENWEATHER_API_KEY")
	case errors.Is(err, rag.ErrNoProvider):
		return llmUnavailable()
	case errors.Is(err, rag.ErrRetrieval), errors.Is(err, rag.ErrGeneration):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
