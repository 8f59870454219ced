package logger

type Config struct {
	Debug  bool
	Pretty bool
	Caller bool `default:"true"`
}
