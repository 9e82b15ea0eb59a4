package main

import (
	"fmt"

	"github.com/lmd-code/webstore/cookie"
	"github.com/lmd-code/webstore/expiry"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

var (
	flagCookieName    string
	flagCookieValue   string
	flagCookieExpires string
)

var cookieCmd = &cobra.Command{
	Use:   "cookie",
	Short: "Cookie header helpers",
}

var cookieRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the cookie assignment text a browser would be handed",
	Long: `Print the cookie assignment text a browser would be handed, using the
attribute defaults from the config file. With no --value a fresh session
identifier is generated. With no --expires the cookie is session-scoped;
otherwise --expires is a duration token string such as "1y 6m 12h".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}

		value := flagCookieValue
		if value == "" {
			value = ksuid.New().String()
		}

		exp := expiry.Session()
		if flagCookieExpires != "" {
			exp = expiry.In(flagCookieExpires)
		}

		sameSite, ok := cookie.ParseSameSite(cfg.Cookie.SameSite)
		if !ok {
			return fmt.Errorf("unrecognized samesite policy %q", cfg.Cookie.SameSite)
		}

		jar := cookie.New(nil,
			cookie.WithPath(cfg.Cookie.Path),
			cookie.WithDomain(cfg.Cookie.Domain),
			cookie.WithSecure(cfg.Cookie.Secure),
			cookie.WithSameSite(sameSite),
			cookie.WithPrefix(cfg.Cookie.Prefix),
		)

		fmt.Println(jar.Render(flagCookieName, value, exp))
		return nil
	},
}

func init() {
	cookieRenderCmd.Flags().StringVar(&flagCookieName, "name", "sid", "cookie name")
	cookieRenderCmd.Flags().StringVar(&flagCookieValue, "value", "", "cookie value (default a generated session id)")
	cookieRenderCmd.Flags().StringVar(&flagCookieExpires, "expires", "", "duration tokens, e.g. \"1y 6m\" (default session-scoped)")

	cookieCmd.AddCommand(cookieRenderCmd)
	rootCmd.AddCommand(cookieCmd)
}
