package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	port:        0,
}

type Authorise struct {
	workdir     string
	credentials string
	port        int
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises sheets-bridge to access Google Drive and Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises sheets-bridge to access Google Drive and Google Sheets on behalf of the user and saves")
	fmt.Println("  the OAuth2 tokens to the working directory. Not required for service account credentials.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) Flags(flagset *pflag.FlagSet) {
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.IntVar(&cmd.port, "port", cmd.port, "localhost port for the authorisation callback (defaults to any free port)")
}

func (cmd *Authorise) Execute(ctx context.Context, options *Options) error {
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	b, err := os.ReadFile(cmd.credentials)
	if err != nil {
		return err
	}

	if isServiceAccount(b) {
		infof("%v is a service account key - no authorisation required", cmd.credentials)
		return nil
	}

	config, err := google.ConfigFromJSON(b, SCOPES...)
	if err != nil {
		return fmt.Errorf("invalid credentials (%w)", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%v", cmd.port))
	if err != nil {
		return err
	}

	state := uuid.NewString()
	config.RedirectURL = fmt.Sprintf("http://localhost:%v/", listener.Addr().(*net.TCPAddr).Port)

	authorised := make(chan string, 1)
	refused := make(chan error, 1)
	srv := &http.Server{
		Handler: callback(state, authorised, refused),
	}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			refused <- err
		}
	}()

	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			warnf("%v", err)
		}
	}()

	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Println()
	fmt.Println("  Open the following URL in your browser to authorise sheets-bridge:")
	fmt.Println()
	fmt.Printf("    %v\n", url)
	fmt.Println()

	if err := exec.Command(BROWSER, url).Start(); err != nil {
		debugf("unable to open browser (%v)", err)
	}

	select {
	case <-ctx.Done():
		fmt.Printf("\n.. cancelled\n\n")
		return nil

	case err := <-refused:
		return fmt.Errorf("authorisation failed (%w)", err)

	case code := <-authorised:
		token, err := config.Exchange(ctx, code)
		if err != nil {
			return fmt.Errorf("unable to retrieve token from web (%w)", err)
		}

		file := tokensFile(cmd.credentials, cmd.workdir)
		if err := saveToken(file, token); err != nil {
			return err
		}

		infof("saved authorisation tokens to %v", file)
	}

	return nil
}

// callback handles the OAuth2 redirect, forwarding the authorisation code for a matching state.
func callback(state string, authorised chan<- string, refused chan<- error) http.Handler {
	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, rq *http.Request) {
		if rq.FormValue("state") != state {
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		}

		if reason := rq.FormValue("error"); reason != "" {
			fmt.Fprintf(w, "%v was not authorised (%v). You can close this window.\n", APP, reason)
			send(refused, fmt.Errorf("%v", reason))
			return
		}

		code := rq.FormValue("code")
		if code == "" {
			http.Error(w, "missing authorisation code", http.StatusBadRequest)
			return
		}

		fmt.Fprintf(w, "%v is authorised. You can close this window.\n", APP)
		send(authorised, code)
	})

	return router
}

func send[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}
