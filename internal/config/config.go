// Package config builds the run configuration from an optional dotenv file,
// an optional YAML file and the process environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissing is returned when a required setting is absent.
	ErrMissing = errors.New("missing required configuration")
	// ErrInvalid is returned when a setting is present but unusable.
	ErrInvalid = errors.New("invalid configuration")
)

// Environment variable names.
const (
	EnvToken           = "GITHUB_TOKEN"
	EnvUsername        = "GITHUB_USERNAME"
	EnvRepositoryOwner = "GITHUB_REPOSITORY_OWNER"
	EnvPeriodDays      = "PERIOD_DAYS"
	EnvPeriodLabel     = "PERIOD_LABEL"
	EnvGraphQLURL      = "GITHUB_GRAPHQL_URL"
	EnvAPIURL          = "GITHUB_API_URL"
	EnvOutputDir       = "OUTPUT_DIR"
)

const defaultEnvFile = ".env"

// Row limits used when neither the file nor the environment sets them.
const (
	DefaultTopRepositories = 15
	DefaultOverviewRows    = 10
	DefaultReadmeCards     = 8
)

// Markers delimit the generated region of the profile README.
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Link is one entry of the links card.
type Link struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"` // SVG path data drawn in a 24x24 box
	Color string `yaml:"color"`
}

// Config holds application configuration.
// It is built once at start-up and passed to every component.
type Config struct {
	// Token is only read from the environment, never from files that may be committed.
	Token    string `yaml:"-"`
	Username string `yaml:"username"`

	PeriodDays  int    `yaml:"period_days"`
	PeriodLabel string `yaml:"period_label"`

	OutputDir string  `yaml:"output_dir"`
	Readme    string  `yaml:"readme"`
	Markers   Markers `yaml:"markers"`

	TopRepositories int `yaml:"top_repositories"`
	OverviewRows    int `yaml:"overview_rows"`
	ReadmeCards     int `yaml:"readme_cards"`

	GraphQLURL     string        `yaml:"graphql_url"`
	APIURL         string        `yaml:"api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RateLimitWait  time.Duration `yaml:"rate_limit_wait"`

	LinksTitle    string `yaml:"links_title"`
	LinksSubtitle string `yaml:"links_subtitle"`
	Links         []Link `yaml:"links"`
}

// Options selects the optional files Load reads.
type Options struct {
	// File is a YAML configuration file. Empty means none.
	File string
	// EnvFile is a dotenv file. Empty means ".env" when it exists.
	EnvFile string
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		PeriodDays:      365,
		PeriodLabel:     "last 12 months",
		OutputDir:       "generated",
		Markers:         Markers{Start: "<!-- REPOS-LIST:START -->", End: "<!-- REPOS-LIST:END -->"},
		TopRepositories: DefaultTopRepositories,
		OverviewRows:    DefaultOverviewRows,
		ReadmeCards:     DefaultReadmeCards,
		GraphQLURL:      "https://api.github.com/graphql",
		APIURL:          "https://api.github.com/",
		RequestTimeout:  30 * time.Second,
		LinksTitle:      "Let's talk",
		LinksSubtitle:   "Pick your preferred channel",
	}
}

// Load builds the configuration. Values already in the environment win over
// the dotenv file, and the environment wins over the YAML file.
// Load does not check required settings; call Validate for that.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	cfg := Default()
	if opts.File != "" {
		if err := cfg.readFile(opts.File); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: env file %s: %v", ErrInvalid, path, err)
	}
	return nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: config file: %v", ErrInvalid, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: config file %s: %v", ErrInvalid, path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		c.Username = v
	}
	// The repository owner only fills in a username nothing else has set.
	if v := os.Getenv(EnvRepositoryOwner); v != "" && c.Username == "" {
		c.Username = v
	}
	if v := os.Getenv(EnvPeriodDays); v != "" {
		days, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvPeriodDays, v)
		}
		c.PeriodDays = days
	}
	if v := os.Getenv(EnvPeriodLabel); v != "" {
		c.PeriodLabel = v
	}
	if v := os.Getenv(EnvGraphQLURL); v != "" {
		c.GraphQLURL = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	return nil
}

// Validate reports the first configuration problem that would stop a
// generation run. It never touches the network.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: %s environment variable is not set", ErrMissing, EnvToken)
	}
	if c.Username == "" {
		return fmt.Errorf("%w: set %s or %s", ErrMissing, EnvUsername, EnvRepositoryOwner)
	}
	if c.PeriodDays <= 0 {
		return fmt.Errorf("%w: period must be a positive number of days, got %d", ErrInvalid, c.PeriodDays)
	}
	if c.TopRepositories < 0 || c.OverviewRows < 0 || c.ReadmeCards < 0 {
		return fmt.Errorf("%w: row limits must not be negative", ErrInvalid)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory", ErrMissing)
	}
	return c.ValidateMarkers()
}

// ValidateMarkers checks that both README markers are set and distinct.
func (c *Config) ValidateMarkers() error {
	if c.Markers.Start == "" || c.Markers.End == "" {
		return fmt.Errorf("%w: README start and end markers", ErrMissing)
	}
	if c.Markers.Start == c.Markers.End {
		return fmt.Errorf("%w: README start and end markers must differ", ErrInvalid)
	}
	return nil
}

// Window returns the lookback period as a duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.PeriodDays) * 24 * time.Hour
}
