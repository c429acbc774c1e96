// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/MKhiriev/go-persona-keeper/internal/client"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/models"
)

const (
	cmdUnlock    = "unlock"
	cmdSetPin    = "set-pin"
	cmdClearPin  = "clear-pin"
	cmdBiometric = "biometric"
	cmdAutoLock  = "autolock"
	cmdExport    = "export"
	cmdImport    = "import"
	cmdAliases   = "aliases"
	cmdStatus    = "status"
	cmdReset     = "reset"
	cmdVersion   = "version"
	cmdHelp      = "help"

	resetConfirmation = "reset"
)

var (
	errUsage            = errors.New("invalid usage")
	errPasswordMismatch = errors.New("passwords do not match")
	errResetAborted     = errors.New("reset aborted")
)

const usage = `usage: persona-keeper [flags] <command>

commands:
  unlock               unlock and browse identities (default)
  set-pin              set or replace the unlock PIN
  clear-pin            remove the unlock PIN
  biometric on|off     toggle biometric unlock
  autolock MINUTES     auto-lock timeout, 0 disables
  export FILE          write an encrypted backup to FILE
  import FILE          restore identities from an encrypted backup
  aliases [copy N]     list forwarding aliases, or copy alias N
  status               show security settings
  reset                destroy all keys, credentials and identities
  version              print build information`

// commandApp is the part of client.App the commands drive.
type commandApp interface {
	Run(ctx context.Context) error
	SetPin(ctx context.Context) error
	ClearPin(ctx context.Context) error
	SetBiometric(ctx context.Context, enabled bool) error
	SetAutoLock(ctx context.Context, minutes int) error
	Export(ctx context.Context, w io.Writer, password []byte) error
	Import(ctx context.Context, r io.Reader, password []byte) error
	Aliases(ctx context.Context) ([]models.Alias, error)
	Status(ctx context.Context) (client.Status, error)
	Reset(ctx context.Context) error
}

type cli struct {
	app          commandApp
	in           *bufio.Reader
	out          io.Writer
	readPassword func(prompt string) ([]byte, error)
	copyText     func(string) error
}

func newCLI(app commandApp, in *os.File, out io.Writer) *cli {
	c := &cli{
		app:      app,
		in:       bufio.NewReader(in),
		out:      out,
		copyText: clipboard.WriteAll,
	}
	c.readPassword = func(prompt string) ([]byte, error) {
		fmt.Fprint(c.out, prompt)
		defer fmt.Fprintln(c.out)
		if term.IsTerminal(int(in.Fd())) {
			return term.ReadPassword(int(in.Fd()))
		}
		line, err := c.in.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return bytes.TrimRight(line, "\r\n"), nil
	}
	return c
}

func (c *cli) execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.app.Run(ctx)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case cmdUnlock:
		return c.app.Run(ctx)
	case cmdSetPin:
		if err := c.app.SetPin(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "PIN set.")
	case cmdClearPin:
		if err := c.app.ClearPin(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "PIN removed.")
	case cmdBiometric:
		return c.biometric(ctx, rest)
	case cmdAutoLock:
		return c.autoLock(ctx, rest)
	case cmdExport:
		return c.export(ctx, rest)
	case cmdImport:
		return c.importBackup(ctx, rest)
	case cmdAliases:
		return c.aliases(ctx, rest)
	case cmdStatus:
		return c.status(ctx)
	case cmdReset:
		return c.reset(ctx)
	case cmdHelp:
		fmt.Fprintln(c.out, usage)
	default:
		fmt.Fprintln(c.out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

func (c *cli) biometric(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("%w: biometric on|off", errUsage)
	}
	enabled := args[0] == "on"
	if err := c.app.SetBiometric(ctx, enabled); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Biometric unlock %s.\n", map[bool]string{true: "enabled", false: "disabled"}[enabled])
	return nil
}

func (c *cli) autoLock(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: autolock MINUTES", errUsage)
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes < 0 {
		return fmt.Errorf("%w: autolock expects a non-negative number of minutes", errUsage)
	}
	if err = c.app.SetAutoLock(ctx, minutes); err != nil {
		return err
	}
	if minutes == 0 {
		fmt.Fprintln(c.out, "Auto-lock disabled.")
	} else {
		fmt.Fprintf(c.out, "Auto-lock after %d minute(s) of inactivity.\n", minutes)
	}
	return nil
}

func (c *cli) export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: export FILE", errUsage)
	}

	password, err := c.readPassword("Backup password: ")
	if err != nil {
		return err
	}
	confirm, err := c.readPassword("Repeat password: ")
	if err != nil {
		crypto.Wipe(password)
		return err
	}
	defer crypto.Wipe(confirm)
	if !bytes.Equal(password, confirm) {
		crypto.Wipe(password)
		return errPasswordMismatch
	}

	f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		crypto.Wipe(password)
		return fmt.Errorf("create backup file: %w", err)
	}

	err = c.app.Export(ctx, f, password)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(args[0])
		return err
	}

	fmt.Fprintf(c.out, "Backup written to %s.\n", args[0])
	return nil
}

func (c *cli) importBackup(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import FILE", errUsage)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	password, err := c.readPassword("Backup password: ")
	if err != nil {
		return err
	}
	if err = c.app.Import(ctx, f, password); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Backup restored.")
	return nil
}

func (c *cli) aliases(ctx context.Context, args []string) error {
	copyIdx := 0
	switch {
	case len(args) == 0:
	case len(args) == 2 && args[0] == "copy":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: aliases copy N", errUsage)
		}
		copyIdx = n
	default:
		return fmt.Errorf("%w: aliases [copy N]", errUsage)
	}

	aliases, err := c.app.Aliases(ctx)
	if err != nil {
		return err
	}

	if copyIdx > 0 {
		if copyIdx > len(aliases) {
			return fmt.Errorf("%w: no alias number %d", errUsage, copyIdx)
		}
		if err = c.copyText(aliases[copyIdx-1].Email); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(c.out, "Copied %s.\n", aliases[copyIdx-1].Email)
		return nil
	}

	if len(aliases) == 0 {
		fmt.Fprintln(c.out, "No aliases.")
		return nil
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tEMAIL\tACTIVE\tDESCRIPTION")
	for i, a := range aliases {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, a.Email, yesNo(a.Active), a.Description)
	}
	return tw.Flush()
}

func (c *cli) status(ctx context.Context) error {
	st, err := c.app.Status(ctx)
	if err != nil {
		return err
	}

	autoLock := "never"
	if st.AutoLockMinutes > 0 {
		autoLock = fmt.Sprintf("%d min", st.AutoLockMinutes)
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PIN\t%s\n", yesNo(st.PinSet))
	fmt.Fprintf(tw, "Biometric\t%s\n", yesNo(st.BiometricEnabled))
	fmt.Fprintf(tw, "Auto-lock\t%s\n", autoLock)
	fmt.Fprintf(tw, "Session\t%s\n", st.Session)
	if st.LockedOut {
		fmt.Fprintf(tw, "Locked out\t%ds\n", st.LockoutSeconds)
	}
	return tw.Flush()
}

func (c *cli) reset(ctx context.Context) error {
	fmt.Fprintf(c.out, "This destroys every key, the PIN and all identities.\nType %q to continue: ", resetConfirmation)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if strings.TrimSpace(line) != resetConfirmation {
		return errResetAborted
	}

	if err = c.app.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "All local data destroyed.")
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
