package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/vizdash/app/dashboard"
	"github.com/umputun/vizdash/app/dataset"
	"github.com/umputun/vizdash/app/figure"
	"github.com/umputun/vizdash/app/server"
)

var opts struct {
	Data  string `short:"d" long:"data" env:"VIZDASH_DATA" default:"embedded" description:"dataset source (embedded, csv file, sqlite file or postgres://...)"`
	Year  int    `long:"year" env:"VIZDASH_YEAR" default:"2007" description:"dataset year shown by the charts"`
	Title string `long:"title" env:"VIZDASH_TITLE" default:"Vizro Bootstrap Demo" description:"dashboard title"`

	Template struct {
		Light     string  `long:"light" env:"LIGHT" default:"vizro" description:"template used with the switch on"`
		Dark      string  `long:"dark" env:"DARK" default:"vizro_dark" description:"template used with the switch off"`
		File      string  `long:"file" env:"FILE" description:"templates file (yaml or toml) merged over the built-in ones"`
		Watch     bool    `long:"watch" env:"WATCH" description:"reload templates file on change"`
		SizeMax   float64 `long:"size-max" env:"SIZE_MAX" default:"60" description:"max bubble diameter of the scatter chart"`
		Width     int     `long:"width" env:"WIDTH" default:"960" description:"chart width in pixels"`
		Height    int     `long:"height" env:"HEIGHT" default:"540" description:"chart height in pixels"`
		CacheSize int     `long:"cache-size" env:"CACHE_SIZE" default:"64" description:"max rendered charts kept in cache"`
	} `group:"template" namespace:"template" env-namespace:"VIZDASH_TEMPLATE"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8050" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /dash)"`
		BodyLimit       int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"VIZDASH_SERVER"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("vizdash %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(ctx, opts.Data)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	templates, err := figure.NewTemplates(opts.Template.File)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	if opts.Template.Watch && opts.Template.File != "" {
		if err := templates.Watch(ctx); err != nil {
			return fmt.Errorf("failed to watch templates: %w", err)
		}
	}

	dash, err := dashboard.New(ds, templates, dashboard.Config{
		Title:         opts.Title,
		Year:          opts.Year,
		LightTemplate: opts.Template.Light,
		DarkTemplate:  opts.Template.Dark,
		SizeMax:       opts.Template.SizeMax,
	})
	if err != nil {
		return fmt.Errorf("failed to make dashboard: %w", err)
	}

	renderer, err := figure.NewRenderer(templates, figure.RenderOpts{
		Width:     opts.Template.Width,
		Height:    opts.Template.Height,
		CacheSize: opts.Template.CacheSize,
	})
	if err != nil {
		return fmt.Errorf("failed to make renderer: %w", err)
	}
	defer func() {
		st := renderer.Stats()
		log.Printf("[DEBUG] render cache: %d hits, %d misses", st.Hits, st.Misses)
		_ = renderer.Close()
	}()

	srv, err := server.New(dash, renderer, templates, server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		BodySizeLimit:   opts.Server.BodyLimit,
		RequestsPerSec:  opts.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// validateBaseURL normalizes base URL: leading slash required, trailing slash dropped, "/" means none.
func validateBaseURL(u string) (string, error) {
	if u == "" || u == "/" {
		return "", nil
	}
	if !strings.HasPrefix(u, "/") {
		return "", fmt.Errorf("base url must start with /, got %q", u)
	}
	return strings.TrimRight(u, "/"), nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
