// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// TrustJSONConfig mirrors [TrustConfig] with json tags for the optional
// configuration file.
type TrustJSONConfig struct {
	KDF struct {
		Iterations int `json:"iterations"`
	} `json:"kdf,omitempty"`

	Scanner struct {
		EntropyThreshold   float64 `json:"entropy_threshold"`
		SampleSize         int     `json:"sample_size"`
		MinScanSize        int     `json:"min_scan_size"`
		QuarantineDir      string  `json:"quarantine_dir"`
		DisableHeuristics  bool    `json:"disable_heuristics"`
		RealTimeProtection bool    `json:"real_time_protection"`
	} `json:"scanner,omitempty"`

	Registry struct {
		Path string `json:"path"`
	} `json:"registry,omitempty"`

	Logs struct {
		SecurityLogPath string `json:"security_log_path"`
	} `json:"logs,omitempty"`
}

func parseJSON(jsonFilePath string) (*TrustConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg TrustJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &TrustConfig{
		KDF: KDF{
			Iterations: jsonCfg.KDF.Iterations,
		},
		Scanner: Scanner{
			EntropyThreshold:   jsonCfg.Scanner.EntropyThreshold,
			SampleSize:         jsonCfg.Scanner.SampleSize,
			MinScanSize:        jsonCfg.Scanner.MinScanSize,
			QuarantineDir:      jsonCfg.Scanner.QuarantineDir,
			DisableHeuristics:  jsonCfg.Scanner.DisableHeuristics,
			RealTimeProtection: jsonCfg.Scanner.RealTimeProtection,
		},
		Registry: Registry{
			Path: jsonCfg.Registry.Path,
		},
		Logs: Logs{
			SecurityLogPath: jsonCfg.Logs.SecurityLogPath,
		},
	}

	return cfg, nil
}
