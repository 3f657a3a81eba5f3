package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/service"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

var errNoServices = errors.New("client services are not provided")

// Command selects what the CLI asks the server for. Version takes precedence
// over Gateway, which takes precedence over the init config.
type Command struct {
	Path           string
	AcceptLanguage string
	Gateway        string
	Version        bool
}

// RegisterFlags binds the command flags to fs. It has to run before fs is
// parsed by the config loader.
func RegisterFlags(fs *flag.FlagSet) *Command {
	cmd := &Command{}
	fs.StringVar(&cmd.Path, "path", "/", "Navigation path the init config is requested for")
	fs.StringVar(&cmd.AcceptLanguage, "lang", "", "Accept-Language sent with the init config request")
	fs.StringVar(&cmd.Gateway, "gateway", "", "Canister name or id to resolve the gateway URL for")
	fs.BoolVar(&cmd.Version, "version", false, "Print the wallet version and server build info")

	return cmd
}

// versionOutput is printed for the -version command.
type versionOutput struct {
	WalletVersion string                   `json:"walletVersion"`
	Server        models.BuildInfoResponse `json:"server"`
}

type App struct {
	services *service.ClientServices
	cmd      Command
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cmd Command, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.BootstrapService == nil {
		return nil, errNoServices
	}

	return &App{
		services: services,
		cmd:      cmd,
		out:      out,
		logger:   logger,
	}, nil
}

// Run executes the command once and prints the result as indented JSON.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())
	bootstrap := a.services.BootstrapService

	var result any
	switch {
	case a.cmd.Version:
		version, buildInfo, err := bootstrap.Version(ctx)
		if err != nil {
			return err
		}
		result = versionOutput{WalletVersion: version, Server: buildInfo}

	case a.cmd.Gateway != "":
		gateway, err := bootstrap.Gateway(ctx, a.cmd.Gateway)
		if err != nil {
			return err
		}
		result = gateway

	default:
		a.logger.Debug().
			Str("path", a.cmd.Path).
			Str("accept_language", a.cmd.AcceptLanguage).
			Msg("requesting init config")

		view, err := bootstrap.InitConfig(ctx, a.cmd.Path, a.cmd.AcceptLanguage)
		if err != nil {
			return err
		}
		result = view
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}
