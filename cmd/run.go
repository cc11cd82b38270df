package cmd

import (
	"context"
	"errors"
	"fmt"

	"obenseuer-installer/internal/config"
	"obenseuer-installer/internal/lock"
	"obenseuer-installer/internal/logger"
	"obenseuer-installer/internal/storefront"
)

// run resolves the game folder and performs the action selected by opts.
// Precedence when several actions are requested: uninstall, update, check-integrity, install.
func run(ctx context.Context, opts config.Options, deps dependencies) error {
	logger.Debug("[DEBUG] Options: %+v\n", opts)

	profile, err := config.DefaultProfile()
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return fail(err)
	}
	if opts.Platform != "" && !config.Known(opts.Platform) {
		logger.Warn("[WARN] Unknown platform '%s', defaulting to '%s'\n", opts.Platform, config.DefaultPlatform)
	}

	lk, err := lock.Acquire(deps.lockName)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return fail(err)
	}
	defer func() {
		if rerr := lk.Release(); rerr != nil {
			logger.Warn("[WARN] %v\n", rerr)
		}
	}()

	installDir, err := storefront.Resolve(deps.storefront(), profile.Game.AppID)
	if err != nil {
		logger.Error("[ERROR] %s\n", resolveFailure(profile.Game.Name, err))
		return fail(err)
	}
	logger.Info("[INFO] %s is installed.\n\n", profile.Game.Name)

	runCfg := config.NewRun(opts, profile, installDir)
	ops := deps.operations(runCfg)
	ask := deps.prompter(opts.SkipQuestions)

	if err := dispatch(ctx, runCfg, ops, ask); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return fail(err)
	}

	if err := ask.WaitForKey(); err != nil {
		logger.Debug("[DEBUG] Waiting for key press failed: %v\n", err)
	}
	return nil
}

// resolveFailure describes why the install directory could not be resolved.
func resolveFailure(game string, err error) string {
	switch {
	case errors.Is(err, storefront.ErrNotInstalled):
		return fmt.Sprintf("Could not run installer: %s is not installed!", game)
	case errors.Is(err, storefront.ErrClientUnavailable):
		return fmt.Sprintf("Could not run installer, Steam client initialization failed: %v", err)
	default:
		return fmt.Sprintf("Could not run installer: %v", err)
	}
}

func dispatch(ctx context.Context, runCfg *config.Run, ops operations, ask prompter) error {
	opts := runCfg.Options
	game := runCfg.Profile.Game.Name
	dir := runCfg.Target.InstallDirectory

	switch {
	case opts.Uninstall:
		ok, err := confirm(ask, fmt.Sprintf("Uninstall the %s modding environment?", game),
			fmt.Sprintf("BepInEx, all installed mods and their configuration will be deleted from %s.", dir))
		if err != nil || !ok {
			return err
		}
		return ops.Uninstall()
	case opts.Update:
		ok, err := confirm(ask, fmt.Sprintf("Update the %s modding environment?", game),
			fmt.Sprintf("Files in %s will be overwritten with the latest release.", dir))
		if err != nil || !ok {
			return err
		}
		return ops.Update(ctx)
	case opts.CheckIntegrity:
		return ops.CheckIntegrity()
	default:
		ok, err := confirm(ask, fmt.Sprintf("Install the %s modding environment?", game),
			fmt.Sprintf("BepInEx for %s will be extracted into %s.", runCfg.Target.Platform, dir))
		if err != nil || !ok {
			return err
		}
		return ops.Install(ctx)
	}
}

func confirm(ask prompter, title, description string) (bool, error) {
	ok, err := ask.Confirm(title, description)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Warn("[WARN] Aborted, nothing was changed.\n")
	}
	return ok, nil
}
