package mockserver

import (
	"cardexcli/src/auth"
	"cardexcli/src/database"
	"cardexcli/src/server"

	"github.com/sirupsen/logrus"
)

// MockServer serves a seeded stand-in for the CarDex API.
type MockServer struct {
	Log      *logrus.Entry
	Port     string
	DBConfig database.Config
}

func (s *MockServer) Start() error {
	if err := database.InitMainDB(s.DBConfig); err != nil {
		s.Log.WithError(err).Error("Failed to initialize demo store")
		return err
	}

	s.Log.WithFields(logrus.Fields{
		"port":   s.Port,
		"driver": s.DBConfig.Driver,
		"seeded": s.DBConfig.Seed,
	}).Info("Starting CarDex mock server")

	router := server.NewRouter(server.NewGormStores(), auth.NewTokenStore())
	server.StartServer(s.Port, router)
	return nil
}
