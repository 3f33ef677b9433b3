package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	sessionName     string
	sessionListJSON bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage saved fit sessions",
	Long:  `Save setup files as named sessions and manage them.`,
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save <setup-file>",
	Short: "Save a setup file as a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionSave,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a session's report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionExportCmd = &cobra.Command{
	Use:   "export <id|name> <file>",
	Short: "Write a session to a setup file",
	Args:  cobra.ExactArgs(2),
	RunE:  runSessionExport,
}

var sessionRemoveCmd = &cobra.Command{
	Use:     "rm <id|name>",
	Aliases: []string{"remove"},
	Short:   "Remove a session",
	Args:    cobra.ExactArgs(1),
	RunE:    runSessionRemove,
}

func init() {
	sessionSaveCmd.Flags().StringVar(&sessionName, "name", "", "session name (defaults to the setup name)")
	sessionListCmd.Flags().BoolVar(&sessionListJSON, "json", false, "output as JSON")
	sessionCmd.AddCommand(sessionSaveCmd, sessionListCmd, sessionShowCmd, sessionExportCmd, sessionRemoveCmd)
	rootCmd.AddCommand(sessionCmd)
}

func requireSessions() error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	return nil
}

func runSessionSave(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}
	if setupLoader == nil {
		return errors.New("setup loader not configured")
	}

	session, err := setupLoader.Load(args[0])
	if err != nil {
		return err
	}
	if sessionName != "" {
		session.Name = sessionName
	}

	created, err := sessionService.Create(cmd.Context(), session)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	cmd.Printf("Saved session %q (%s)\n", created.Name, created.ID)
	return nil
}

type sessionView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Strain    string    `json:"strain,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func runSessionList(cmd *cobra.Command, _ []string) error {
	if err := requireSessions(); err != nil {
		return err
	}
	sessions, err := sessionService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		v := sessionView{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
		if s.Strain != nil {
			v.Strain = string(s.Strain.Kind())
		}
		views = append(views, v)
	}

	if sessionListJSON {
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sessions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(views) == 0 {
		cmd.Println("No sessions saved.")
		return nil
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{v.ID, v.Name, v.Strain, v.UpdatedAt.Format(time.DateTime)})
	}
	cmd.Println(renderTable([]string{"ID", "NAME", "STRAIN", "UPDATED"}, rows))
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}
	session, err := sessionService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("session %q: %w", args[0], err)
	}
	cmd.Printf("%s (%s)\n", session.Name, session.ID)
	cmd.Print(session.Report())
	return nil
}

func runSessionExport(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}
	if setupLoader == nil {
		return errors.New("setup loader not configured")
	}
	session, err := sessionService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("session %q: %w", args[0], err)
	}
	if err := setupLoader.Save(args[1], session); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}
	cmd.Printf("Wrote %s\n", args[1])
	return nil
}

func runSessionRemove(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}
	session, err := sessionService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("session %q: %w", args[0], err)
	}
	if err := sessionService.Remove(cmd.Context(), session.ID); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	cmd.Printf("Removed session %q\n", session.Name)
	return nil
}
