package command

import (
	"net/http"
	"strings"

	"smartrx-client/internal/app/services/store"
	"smartrx-client/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

func newFetchCmd(app *application) *cobra.Command {
	var method, data string

	fetchCmd := &cobra.Command{
		Use:   "fetch <endpoint>",
		Short: "Call The SmartRx API",
		Long:  "The fetch command sends a request to an endpoint relative to the API base URL and prints the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := args[0]

			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			opts := store.RequestOptions{Method: method}
			if data != "" {
				opts.Header = http.Header{constvars.HeaderContentType: []string{constvars.MIMEApplicationJSON}}
				opts.Body = strings.NewReader(data)
			}

			out, err := s.FetchFromBackend(cmd.Context(), endpoint, opts)
			if err != nil {
				return err
			}

			app.Console.Debugf("Fetched %s", endpoint)
			return printJSON(cmd, out)
		},
	}
	fetchCmd.Flags().StringVarP(&method, "method", "X", constvars.MethodGet, "HTTP method")
	fetchCmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	return fetchCmd
}
