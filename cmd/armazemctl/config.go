package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "ARMAZEMCTL"
	configFileName = ".armazemctl.yaml"

	cfgKeyServer  = "server"
	cfgKeyToken   = "token"
	cfgKeyTimeout = "timeout"

	defaultServer  = "http://localhost:8080"
	defaultTimeout = "10s"
)

// defaultConfigPath devolve $HOME/.armazemctl.yaml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("diretório home indisponível: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// loadConfig lê o arquivo (se existir) e as variáveis ARMAZEMCTL_*.
// Arquivo ausente não é erro.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyServer, defaultServer)
	v.SetDefault(cfgKeyTimeout, defaultTimeout)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !configNotFound(err) {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	return v, nil
}

// saveToken grava o token no arquivo de configuração, preservando as outras chaves.
func saveToken(path, token string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !configNotFound(err) {
		return fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	v.Set(cfgKeyToken, token)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("falha ao gravar %s: %w", path, err)
	}
	return os.Chmod(path, 0o600)
}

func configNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
