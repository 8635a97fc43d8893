package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/infrastructure/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_ShouldApplyDefaults() {
	cfg, err := config.Load("")

	s.Require().NoError(err)
	s.Equal("NutriVeda Planner", cfg.App.Name)
	s.Equal(8080, cfg.Server.Port)
	s.Equal("nutriveda", cfg.Database.Database)
	s.Equal(7, cfg.Planner.DefaultDays)
	s.Equal(30, cfg.Planner.MaxDays)
	s.False(cfg.AI.Enabled)
	s.False(cfg.Redis.Enabled)
}

func (s *ConfigTestSuite) TestLoad_ShouldHonorEnvironmentOverrides() {
	s.T().Setenv("NUTRIVEDA_SERVER_PORT", "9090")
	s.T().Setenv("NUTRIVEDA_APP_LOG_LEVEL", "debug")

	cfg, err := config.Load("")

	s.Require().NoError(err)
	s.Equal(9090, cfg.Server.Port)
	s.Equal("debug", cfg.App.LogLevel)
}

func (s *ConfigTestSuite) TestValidate_ShouldRejectBadValues() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	cfg.Server.Port = 0
	s.Error(cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Planner.DefaultDays = 40
	s.Error(cfg.Validate())
}

func (s *ConfigTestSuite) TestGetDSN_ShouldFormatPerDriver() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Contains(cfg.GetDSN(), "dbname=nutriveda")

	cfg.Database.Driver = "sqlite"
	cfg.Database.Database = "planner.db"
	s.Equal("planner.db", cfg.GetDSN())
}
