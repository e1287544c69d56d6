// Package config собирает конфигурацию утилит из значений по умолчанию,
// файла конфигурации, переменных окружения и флагов (в порядке возрастания приоритета).
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var (
	ErrNoHosts          = errors.New("host list is empty")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidPortRange = errors.New("invalid port range")
	ErrInvalidValue     = errors.New("invalid value")
)

// flagSpec связывает флаг командной строки с ключом viper.
type flagSpec struct {
	name  string
	key   string
	usage string
}

// newViper создаёт экземпляр viper со значениями по умолчанию и чтением окружения.
func newViper(defaults map[string]any) *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()
	return v
}

// parseFlags разбирает args. Явно переданные флаги перекрывают всё остальное.
// Флаг -c/-config задаёт файл конфигурации (ключ CONFIG).
func parseFlags(name string, args []string, specs []flagSpec, v *viper.Viper) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	specs = append(specs,
		flagSpec{name: "c", key: "CONFIG", usage: "path to config file (json, yaml, toml)"},
		flagSpec{name: "config", key: "CONFIG", usage: "path to config file (json, yaml, toml)"},
	)

	values := make(map[string]*string, len(specs))
	keys := make(map[string]string, len(specs))
	for _, s := range specs {
		values[s.name] = fs.String(s.name, "", s.usage)
		keys[s.name] = s.key
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		v.Set(keys[f.Name], *values[f.Name])
	})

	if path := v.GetString("CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %q: %w", path, err)
		}
	}
	return nil
}

// typed читает числовые значения из viper с проверкой.
// viper.GetInt и соседи молча превращают нечисловую строку в ноль,
// поэтому значения разбираются через cast; запоминается первая ошибка.
type typed struct {
	v   *viper.Viper
	err error
}

func (t *typed) fail(key string, raw any, err error) {
	if t.err == nil {
		t.err = fmt.Errorf("%w %s=%v: %v", ErrInvalidValue, key, raw, err)
	}
}

func (t *typed) Int(key string) int {
	raw := t.v.Get(key)
	n, err := cast.ToIntE(raw)
	if err != nil {
		t.fail(key, raw, err)
	}
	return n
}

func (t *typed) Int64(key string) int64 {
	raw := t.v.Get(key)
	n, err := cast.ToInt64E(raw)
	if err != nil {
		t.fail(key, raw, err)
	}
	return n
}

func (t *typed) Float64(key string) float64 {
	raw := t.v.Get(key)
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		t.fail(key, raw, err)
	}
	return f
}

// Duration требует единицу измерения: "5" отвергается, а не читается как 5ns.
func (t *typed) Duration(key string) time.Duration {
	raw := t.v.Get(key)
	switch val := raw.(type) {
	case time.Duration:
		return val
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(val))
		if err != nil {
			t.fail(key, raw, err)
		}
		return d
	default:
		t.fail(key, raw, errors.New("want a duration with a unit, e.g. 5s"))
		return 0
	}
}

// stringList читает список строк. Поддерживает и список из файла,
// и строку через запятую из окружения или флага.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ReadHosts читает поле hosts из структурированного файла.
// Формат определяется по расширению. Ключ нечувствителен к регистру,
// поэтому подходит и {"hosts": [...]}, и {"Hosts": [...]}.
func ReadHosts(path string) ([]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read hosts file %q: %w", path, err)
	}

	hosts := stringList(v, "hosts")
	if len(hosts) == 0 {
		return nil, fmt.Errorf("hosts file %q: %w", path, ErrNoHosts)
	}
	return hosts, nil
}
