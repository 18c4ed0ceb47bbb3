package web

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"engsoc.net/eweek/internal/countdown"
	"engsoc.net/eweek/internal/database"
	"engsoc.net/eweek/internal/events"
	"engsoc.net/eweek/internal/fetcher"
	"engsoc.net/eweek/internal/leaderboard"
	"engsoc.net/eweek/internal/registration"
	"engsoc.net/eweek/internal/scorecard"
	"engsoc.net/eweek/internal/types"
)

type Server struct {
	App    *fiber.App
	db     *database.DatabaseInst
	client *fetcher.Client
	config ServerConfig
}

type ServerConfig struct {
	Port          int
	Batches       []string
	EventStart    string
	EventEnd      string
	ScheduleStart string
	ScheduleDays  int
}

func NewServer(config ServerConfig, db *database.DatabaseInst, client *fetcher.Client) *Server {
	s := &Server{
		App:    fiber.New(),
		db:     db,
		client: client,
		config: config,
	}

	s.App.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Accept,Authorization,Content-Type",
		AllowCredentials: false, // credentials require explicit origins
		MaxAge:           300,
	}))

	s.App.Get("/health", s.HandleHealth)
	s.App.Get("/countdown", s.HandleCountdown)
	s.App.Get("/events", s.HandleEvents)
	s.App.Get("/events/:id", s.HandleEventById)
	s.App.Get("/schedule", s.HandleSchedule)
	s.App.Get("/leaderboard", s.HandleLeaderboard)
	s.App.Get("/scorecards", s.HandleScorecards)
	s.App.Get("/dashboard", s.HandleDashboard)
	s.App.Post("/register", s.HandleRegister)

	return s
}

// Listen blocks serving the app.
func (s *Server) Listen() error {
	return s.App.Listen(fmt.Sprintf(":%d", s.config.Port))
}

func (s *Server) HandleHealth(c *fiber.Ctx) error {
	upstream := "ok"
	if err := s.client.Health(); err != nil {
		upstream = "down"
	}
	return c.JSON(fiber.Map{"status": "ok", "upstream": upstream})
}

func (s *Server) HandleCountdown(c *fiber.Ctx) error {
	status, left := countdown.ResolveStrings(time.Now(), s.config.EventStart, s.config.EventEnd)
	return c.JSON(fiber.Map{"status": status, "timeLeft": left})
}

func (s *Server) HandleEvents(c *fiber.Ctx) error {
	all, err := s.db.GetEvents()
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusInternalServerError)
	}

	return c.JSON(events.Bucketize(all))
}

func (s *Server) HandleEventById(c *fiber.Ctx) error {
	ev, err := s.client.EventById(c.Params("id"))
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusBadGateway)
	}
	if ev == nil {
		return c.SendStatus(http.StatusNotFound)
	}

	return c.JSON(ev)
}

func (s *Server) HandleSchedule(c *fiber.Ctx) error {
	all, err := s.db.GetEvents()
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusInternalServerError)
	}

	windowStart, err := countdown.ParseInstant(s.config.ScheduleStart)
	if err != nil {
		log.Printf("WARN: invalid schedule start %q\n", s.config.ScheduleStart)
		return c.SendStatus(http.StatusInternalServerError)
	}

	return c.JSON(events.BuildSchedule(all, windowStart, s.config.ScheduleDays))
}

func (s *Server) HandleLeaderboard(c *fiber.Ctx) error {
	return c.JSON(s.currentRanking())
}

func (s *Server) HandleScorecards(c *fiber.Ctx) error {
	finished := s.finishedEvents()

	payload, err := s.client.FetchLeaderboard()
	if err != nil {
		log.Println(err)
		payload = leaderboard.Payload{Kind: leaderboard.KindNone}
	}

	return c.JSON(scorecard.BuildScorecards(payload, s.config.Batches, finished))
}

func (s *Server) HandleDashboard(c *fiber.Ctx) error {
	status, left := countdown.ResolveStrings(time.Now(), s.config.EventStart, s.config.EventEnd)

	upcoming := []types.EventRecord{}
	if all, err := s.db.GetEvents(); err == nil {
		upcoming = events.TopUpcoming(events.Bucketize(all).Upcoming, 5)
	} else {
		log.Println(err)
	}

	return c.JSON(fiber.Map{
		"status":      status,
		"timeLeft":    left,
		"upcoming":    upcoming,
		"leaderboard": s.currentRanking(),
	})
}

type registerRequest struct {
	types.RegistrationForm
	Stats types.BatchStats `json:"stats"`
}

func (s *Server) HandleRegister(c *fiber.Ctx) error {
	req := registerRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result := registration.Validate(req.RegistrationForm, req.Stats)
	if !result.Valid {
		return c.Status(http.StatusUnprocessableEntity).JSON(result)
	}

	message, err := s.client.Register(fetcher.RegistrationPayload{
		EventId:  req.EventId,
		TeamName: req.TeamName,
		Members:  req.Participants,
	})
	if err != nil {
		log.Println(err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "registration could not be submitted"})
	}

	return c.JSON(fiber.Map{"message": message})
}

// currentRanking runs the full fallback chain: live board, then demo board,
// then whatever snapshot the last successful poll left in the cache.
func (s *Server) currentRanking() []types.LeaderboardRow {
	payload, err := s.client.FetchLeaderboard()
	if err == nil {
		return leaderboard.Reconcile(payload, s.config.Batches, s.finishedEvents())
	}
	log.Println(err)

	cached, err := s.db.GetLeaderboard()
	if err != nil {
		log.Println(err)
		return []types.LeaderboardRow{}
	}
	return cached
}

func (s *Server) finishedEvents() []types.EventRecord {
	all, err := s.db.GetEvents()
	if err != nil {
		log.Println(err)
		return nil
	}
	return events.Bucketize(all).Finished
}
