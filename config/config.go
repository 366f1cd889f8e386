// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads the static configuration of a DVN.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/luxfi/ids"
)

const (
	EnvSourceEID      = "DVN_SOURCE_EID"
	EnvTargetEID      = "DVN_TARGET_EID"
	EnvSourceRPCURL   = "DVN_SOURCE_RPC_URL"
	EnvTargetRPCURL   = "DVN_TARGET_RPC_URL"
	EnvSourceEndpoint = "DVN_SOURCE_ENDPOINT"
	EnvDVNAddress     = "DVN_ADDRESS"
)

var (
	ErrMissingEnv    = errors.New("missing environment variable")
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidConfig = errors.New("invalid config")

	requiredEnv = []string{
		EnvSourceEID,
		EnvTargetEID,
		EnvSourceRPCURL,
		EnvTargetRPCURL,
		EnvSourceEndpoint,
		EnvDVNAddress,
	}
)

// Config is the read-only configuration held by a DVN.
type Config struct {
	// SourceEID is the endpoint id of the chain packets are read from.
	SourceEID uint32
	// TargetEID is the endpoint id of the chain attestations are written to.
	TargetEID uint32

	SourceRPCURL string
	TargetRPCURL string

	// SourceEndpoint is the address of the messaging endpoint on the source
	// chain.
	SourceEndpoint ids.ShortID
	// DVNAddress is the address this DVN is registered under.
	DVNAddress ids.ShortID
}

type fileConfig struct {
	SourceEID      uint32 `toml:"source_eid"`
	TargetEID      uint32 `toml:"target_eid"`
	SourceRPCURL   string `toml:"source_rpc_url"`
	TargetRPCURL   string `toml:"target_rpc_url"`
	SourceEndpoint string `toml:"source_endpoint"`
	DVNAddress     string `toml:"dvn_address"`
}

// LoadFromEnv builds a Config from the DVN_* environment variables. Every
// variable is required and must not be blank.
func LoadFromEnv() (Config, error) {
	for _, name := range requiredEnv {
		if _, ok := lookupEnv(name); !ok {
			return Config{}, fmt.Errorf("%w: %s", ErrMissingEnv, name)
		}
	}

	var raw fileConfig
	if err := applyEnvOverrides(&raw); err != nil {
		return Config{}, err
	}
	return raw.build()
}

// LoadFile decodes the TOML file at path. Any DVN_* environment variable
// that is set overrides the matching file value.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := applyEnvOverrides(&raw); err != nil {
		return Config{}, err
	}
	return raw.build()
}

// Validate reports whether c describes a usable route.
func (c Config) Validate() error {
	switch {
	case c.SourceEID == 0:
		return fmt.Errorf("%w: source eid is zero", ErrInvalidConfig)
	case c.TargetEID == 0:
		return fmt.Errorf("%w: target eid is zero", ErrInvalidConfig)
	case c.SourceEID == c.TargetEID:
		return fmt.Errorf("%w: source and target eid are both %d", ErrInvalidConfig, c.SourceEID)
	case c.SourceEndpoint == ids.ShortEmpty:
		return fmt.Errorf("%w: source endpoint is empty", ErrInvalidConfig)
	case c.DVNAddress == ids.ShortEmpty:
		return fmt.Errorf("%w: dvn address is empty", ErrInvalidConfig)
	}
	if err := validateURL(c.SourceRPCURL); err != nil {
		return fmt.Errorf("%w: source rpc url: %w", ErrInvalidConfig, err)
	}
	if err := validateURL(c.TargetRPCURL); err != nil {
		return fmt.Errorf("%w: target rpc url: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (f fileConfig) build() (Config, error) {
	sourceEndpoint, err := parseAddress(f.SourceEndpoint)
	if err != nil {
		return Config{}, fmt.Errorf("source endpoint: %w", err)
	}
	dvnAddress, err := parseAddress(f.DVNAddress)
	if err != nil {
		return Config{}, fmt.Errorf("dvn address: %w", err)
	}

	c := Config{
		SourceEID:      f.SourceEID,
		TargetEID:      f.TargetEID,
		SourceRPCURL:   strings.TrimSpace(f.SourceRPCURL),
		TargetRPCURL:   strings.TrimSpace(f.TargetRPCURL),
		SourceEndpoint: sourceEndpoint,
		DVNAddress:     dvnAddress,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func applyEnvOverrides(f *fileConfig) error {
	if v, ok := lookupEnv(EnvSourceEID); ok {
		eid, err := parseEID(EnvSourceEID, v)
		if err != nil {
			return err
		}
		f.SourceEID = eid
	}
	if v, ok := lookupEnv(EnvTargetEID); ok {
		eid, err := parseEID(EnvTargetEID, v)
		if err != nil {
			return err
		}
		f.TargetEID = eid
	}
	if v, ok := lookupEnv(EnvSourceRPCURL); ok {
		f.SourceRPCURL = v
	}
	if v, ok := lookupEnv(EnvTargetRPCURL); ok {
		f.TargetRPCURL = v
	}
	if v, ok := lookupEnv(EnvSourceEndpoint); ok {
		f.SourceEndpoint = v
	}
	if v, ok := lookupEnv(EnvDVNAddress); ok {
		f.DVNAddress = v
	}
	return nil
}

// lookupEnv treats a variable set to blanks as unset.
func lookupEnv(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	return v, v != ""
}

func parseEID(name, raw string) (uint32, error) {
	eid, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, name, raw, err)
	}
	return uint32(eid), nil
}

// parseAddress decodes a 20-byte hex address with an optional 0x prefix.
func parseAddress(raw string) (ids.ShortID, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	b, err := hex.DecodeString(raw)
	if err != nil {
		return ids.ShortEmpty, fmt.Errorf("%w: %q is not hex: %w", ErrInvalidValue, raw, err)
	}
	addr, err := ids.ToShortID(b)
	if err != nil {
		return ids.ShortEmpty, fmt.Errorf("%w: %q: %w", ErrInvalidValue, raw, err)
	}
	return addr, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute url", raw)
	}
	return nil
}
