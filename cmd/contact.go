package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
	contactPrint   bool
)

// contactCmd represents the contact command
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Validate a contact message and copy it as a draft",
	Long: `Fill in the contact form and copy the resulting message draft to the clipboard.

Every field is required and the email must look like name@domain.tld.
Fields not given as flags are prompted for.

Examples:
  hb contact
  hb contact --name "Sam" --email sam@example.com --message "When do I pour the slab?"
  hb contact -n Sam -e sam@example.com -m "Hello" --print`,
	Args: cobra.NoArgs,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().StringVarP(&contactName, "name", "n", "", "Your name")
	contactCmd.Flags().StringVarP(&contactEmail, "email", "e", "", "Your email address")
	contactCmd.Flags().StringVarP(&contactMessage, "message", "m", "", "Your message")
	contactCmd.Flags().BoolVarP(&contactPrint, "print", "p", false, "Print the draft instead of copying it")
}

func runContact(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	form := domain.ContactForm{
		Name:    contactName,
		Email:   contactEmail,
		Message: contactMessage,
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		reader := bufio.NewReader(in)
		form.Name = promptIfEmpty(out, reader, "Name", form.Name)
		form.Email = promptIfEmpty(out, reader, "Email", form.Email)
		form.Message = promptIfEmpty(out, reader, "Message", form.Message)
	}

	if errs := form.Validate(); len(errs) > 0 {
		fmt.Fprintln(out, ui.FormatError("Please fix the following fields:"))
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, e.Error())
		}
		fmt.Fprint(out, ui.RenderBulletList(messages))
		return fmt.Errorf("contact form has %d invalid field(s)", len(errs))
	}

	draft := form.Draft()
	if contactPrint {
		fmt.Fprint(out, draft)
		return nil
	}

	if err := systemClipboard.WriteAll(draft); err != nil {
		fmt.Fprintln(out, ui.FormatWarning("Could not copy draft: "+err.Error()))
		fmt.Fprint(out, draft)
		return nil
	}

	fmt.Fprintln(out, ui.FormatSuccess("Thank you for your message! The draft is on your clipboard."))
	return nil
}

// promptIfEmpty asks for a value unless one was given as a flag
func promptIfEmpty(out io.Writer, reader *bufio.Reader, label, value string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	fmt.Fprint(out, ui.StyleAccent.Render(label+": "))
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return value
	}
	return strings.TrimRight(line, "\r\n")
}
