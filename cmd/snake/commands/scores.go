package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "prints the single player high score for every difficulty",
	Run: func(*cobra.Command, []string) {
		k, closer, err := openKeeper()
		if err != nil {
			log.WithError(err).WithField("backend", backendName).Fatal("unable to load high scores")
		}
		defer closer()

		printTable(k.Table())
	},
}

func printTable(t scores.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "DIFFICULTY\tBEST")
	for _, d := range rules.Difficulties {
		fmt.Fprintf(w, "%s\t%d\n", d, t[d])
	}
	if err := w.Flush(); err != nil {
		log.WithError(err).Warn("unable to write table")
	}
}
