package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sentinel-snapshot/internal/adapters/copernicus"
	"sentinel-snapshot/internal/domain"
	"sentinel-snapshot/internal/evalscript"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables: SNAPSHOT_CLIENT_ID -> client_id.
const EnvPrefix = "SNAPSHOT"

// Defaults for the CLI flags.
const (
	DefaultFilename = "image1.jpg"
	DefaultHeight   = 512
	DefaultBox      = "15.0617, 50.2856, 15.2252, 50.3378"
	DefaultFormat   = domain.FormatJPEG
	DefaultQuality  = 90
)

// ErrMissingCredentials is returned when the OAuth client id or secret is blank.
var ErrMissingCredentials = errors.New("client id and client secret are required")

// CredentialsHelp tells the user how to obtain credentials.
const CredentialsHelp = `Fill in SNAPSHOT_CLIENT_ID and SNAPSHOT_CLIENT_SECRET for OAuth authentication
(environment, .env file or --config file).
Create a free account at Copernicus and go here: https://shapps.dataspace.copernicus.eu/dashboard/#/account/settings`

// Config holds everything a single invocation needs.
type Config struct {
	// Filename is where the image is written
	Filename string `mapstructure:"file"`

	// Height is the requested image height in pixels
	Height int `mapstructure:"height"`

	// Box is the raw "lng0,lat0,lng1,lat1" bounding box
	Box string `mapstructure:"box"`

	// Format is the output MIME type (image/jpeg, image/png, image/tiff)
	Format string `mapstructure:"format"`

	// Quality is the JPEG quality (0-100)
	Quality int `mapstructure:"quality"`

	// EvalscriptPath optionally points to a custom shading script
	EvalscriptPath string `mapstructure:"evalscript"`

	// Brightness is the exposure used by the built-in script
	Brightness float64 `mapstructure:"brightness"`

	// ShowToken prints the token and exits without requesting an image
	ShowToken bool `mapstructure:"show-token"`

	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log-level"`

	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenURL     string `mapstructure:"token_url"`
	ProcessURL   string `mapstructure:"process_url"`
}

// NewFlagSet declares the CLI flags. Usage output goes to out.
func NewFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false

	fs.StringP("file", "S", DefaultFilename, "File name (prague.jpg etc.)")
	fs.IntP("height", "V", DefaultHeight, "Image height in pixels (500, 1000 etc.)")
	fs.StringP("box", "B", DefaultBox, "Bounding box in WGS84 coordinates (lng0,lat0,lng1,lat1)")
	fs.StringP("format", "F", DefaultFormat, fmt.Sprintf("Image format (%s, %s, %s)", domain.FormatJPEG, domain.FormatPNG, domain.FormatTIFF))
	fs.IntP("quality", "K", DefaultQuality, "Image quality (0-100)")
	fs.StringP("evalscript", "E", "", "File with custom evalscript (evalscript.js)")
	fs.Float64P("brightness", "J", evalscript.DefaultBrightness, "Image brightness if built-in evalscript is used (0-XXX)")
	fs.BoolP("show-token", "T", false, "Only print a temporary token (usable for Bearer authentication without OAuth)")
	fs.Duration("timeout", copernicus.DefaultTimeout, "HTTP timeout for each API call")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("config", "", "Optional config file (yaml, json, toml) with client_id and client_secret")

	return fs
}

// Load parses args (without the program name) and merges flags, environment
// variables and an optional config file. It returns pflag.ErrHelp when help
// was requested.
func Load(name string, args []string, out io.Writer) (*Config, error) {
	fs := NewFlagSet(name, out)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("parse flags: %w: %v", domain.ErrInvalidArgument, err)
	}

	v := viper.New()

	v.SetDefault("token_url", copernicus.DefaultTokenURL)
	v.SetDefault("process_url", copernicus.DefaultProcessURL)
	v.SetDefault("client_id", "")
	v.SetDefault("client_secret", "")

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	// Environment variables: SNAPSHOT_CLIENT_SECRET -> client_secret
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks credentials first, then the remaining options.
// Missing credentials are reported as ErrMissingCredentials on their own so
// the caller can print CredentialsHelp.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" || strings.TrimSpace(c.ClientSecret) == "" {
		return ErrMissingCredentials
	}

	var errs []string

	if c.TokenURL == "" {
		errs = append(errs, "token_url is required")
	}
	if c.ProcessURL == "" {
		errs = append(errs, "process_url is required")
	}
	if box, err := domain.ParseBoundingBox(c.Box); err != nil {
		errs = append(errs, err.Error())
	} else if err := c.request(box, "").Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %w:\n  - %s", domain.ErrInvalidArgument, strings.Join(errs, "\n  - "))
	}
	return nil
}

// ImageRequest builds the request for this invocation, resolving the shading
// script (an unreadable custom script falls back to the built-in one).
func (c *Config) ImageRequest(logger *slog.Logger) (domain.ImageRequest, error) {
	box, err := domain.ParseBoundingBox(c.Box)
	if err != nil {
		return domain.ImageRequest{}, err
	}

	return c.request(box, evalscript.Resolve(c.EvalscriptPath, c.Brightness, logger)), nil
}

func (c *Config) request(box domain.BoundingBox, script string) domain.ImageRequest {
	return domain.ImageRequest{
		Filename:   c.Filename,
		Height:     c.Height,
		Box:        box,
		Format:     c.Format,
		Quality:    c.Quality,
		Evalscript: script,
		Brightness: c.Brightness,
	}
}
