package main

import (
	"log"

	"engsoc.net/eweek/internal/config"
	"engsoc.net/eweek/internal/events"
	"engsoc.net/eweek/internal/fetcher"
	"engsoc.net/eweek/internal/leaderboard"
	"engsoc.net/eweek/internal/web"

	"github.com/go-co-op/gocron/v2"
	dotenv "github.com/joho/godotenv"
	"engsoc.net/eweek/internal/database"
)

func main() {
	err := dotenv.Load()
	if err != nil {
		log.Println("WARN: Failed to load .env")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalln(err)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalln("Failed to start scheduler")
	}

	db, err := database.InitDatabase(cfg.DBPath, cfg.MigrationsDir)
	if err != nil {
		log.Println(err)
		return
	}

	client := fetcher.New(cfg.APIBaseURL)

	j, err := s.NewJob(
		gocron.DurationJob(cfg.PollInterval),
		gocron.NewTask(pollUpstream, client, db, cfg.Batches),
	)
	if err != nil {
		log.Fatalln("Failed to schedule poll job")
	}

	s.Start()
	defer s.Shutdown()
	j.RunNow() // durationjob doesn't run on startup

	server := web.NewServer(web.ServerConfig{
		Port:          cfg.ServerPort,
		Batches:       cfg.Batches,
		EventStart:    cfg.EventStart,
		EventEnd:      cfg.EventEnd,
		ScheduleStart: cfg.ScheduleStart,
		ScheduleDays:  cfg.ScheduleDays,
	}, db, client)

	log.Println("Started!")

	err = server.Listen()
	if err != nil {
		log.Fatalln(err)
	}
}

// pollUpstream is the fetch-and-normalize pipeline run on every tick. Either
// half failing leaves the previous snapshot in place.
func pollUpstream(client *fetcher.Client, db *database.DatabaseInst, batches []string) {
	all, err := client.GetEvents(nil)
	if err != nil {
		log.Println(err)
		all, err = db.GetEvents()
		if err != nil {
			log.Println(err)
		}
	} else {
		if err := db.StoreEvents(all); err != nil {
			log.Println(err)
		}
	}

	payload, err := client.FetchLeaderboard()
	if err != nil {
		log.Println(err)
		return
	}

	ranking := leaderboard.Reconcile(payload, batches, events.Bucketize(all).Finished)
	if err := db.StoreLeaderboard(ranking); err != nil {
		log.Println(err)
	}
}
