package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dangunter/imgcap"
)

// Environment configuration, optionally loaded from a .env file in the
// working directory:
//
//	IMGCAP_FONT       default font name
//	IMGCAP_FONT_DIRS  colon-separated font search directories

func loadEnv() {
	// A missing .env file is not an error.
	_ = godotenv.Load()
}

func envFont() string {
	if v := os.Getenv("IMGCAP_FONT"); v != "" {
		return v
	}
	return imgcap.DefaultFont
}

func envFontDirs() []string {
	if v := os.Getenv("IMGCAP_FONT_DIRS"); v != "" {
		return strings.Split(v, ":")
	}
	return nil
}
