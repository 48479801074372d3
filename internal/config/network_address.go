package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress адрес HTTP сервера в формате host:port. Пустой host означает все интерфейсы
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set разбирает значение флага -a
func (a *NetworkAddress) Set(value string) error {
	host, portValue, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := parsePort(portValue)
	if err != nil {
		return err
	}

	a.Host = host
	a.Port = port

	return nil
}

// UnmarshalText разбирает значение переменной окружения SERVER_ADDRESS
func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

func parsePort(value string) (int, error) {
	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid port: %w", err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid port: %d out of range", port)
	}

	return port, nil
}
