// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		AdminPassword string   `json:"admin_password"`
		Version       string   `json:"version"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Document struct {
			Path string `json:"path"`
		} `json:"document,omitempty"`

		Records struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
			DSN     string `json:"dsn"`
		} `json:"records,omitempty"`

		Images struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
			S3      struct {
				Bucket       string `json:"bucket"`
				Region       string `json:"region"`
				Endpoint     string `json:"endpoint"`
				AccessKey    string `json:"access_key"`
				SecretKey    string `json:"secret_key"`
				Prefix       string `json:"prefix"`
				UsePathStyle bool   `json:"use_path_style"`
			} `json:"s3,omitempty"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Images.S3

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			AdminPassword: jsonCfg.App.AdminPassword,
			Version:       jsonCfg.App.Version,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Document: Document{Path: jsonCfg.Storage.Document.Path},
			Records: Records{
				Backend: jsonCfg.Storage.Records.Backend,
				Dir:     jsonCfg.Storage.Records.Dir,
				DSN:     jsonCfg.Storage.Records.DSN,
			},
			Images: Images{
				Backend: jsonCfg.Storage.Images.Backend,
				Dir:     jsonCfg.Storage.Images.Dir,
				S3: S3{
					Bucket:       s3.Bucket,
					Region:       s3.Region,
					Endpoint:     s3.Endpoint,
					AccessKey:    s3.AccessKey,
					SecretKey:    s3.SecretKey,
					Prefix:       s3.Prefix,
					UsePathStyle: s3.UsePathStyle,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h"
// or from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
