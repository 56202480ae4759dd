package cli

import (
	"portfolio/internal/logger"
	"portfolio/internal/seed"

	"github.com/spf13/cobra"
)

var forceSeed bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo content",
	Long: "seed creates the demo admin account, skills, projects, experience and pages. " +
		"It does nothing on a database that already has content unless --force is given.",
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&forceSeed, "force", "f", false, "delete all existing data before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)

	res, err := seed.New(db).Run(forceSeed)
	if err != nil {
		return err
	}
	if !res.Skipped {
		logger.Info("demo admin ready", "email", seed.AdminEmail)
	}
	return nil
}
