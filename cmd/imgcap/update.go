package main

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// Version is the release version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "0.2.0"

const releaseRepo = "dangunter/imgcap"

// checkForUpdate compares the running version against the latest GitHub
// release and replaces the binary when a newer one exists.
func checkForUpdate() error {
	current, err := semver.Parse(Version)
	if err != nil {
		return fmt.Errorf("bad build version %q: %w", Version, err)
	}

	latest, found, err := selfupdate.DetectLatest(releaseRepo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest.Version.LTE(current) {
		fmt.Printf("imgcap %s is up to date\n", Version)
		return nil
	}

	fmt.Printf("updating %s -> %s\n", Version, latest.Version)
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Printf("updated to %s\n", latest.Version)
	return nil
}
