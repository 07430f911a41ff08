package repository

// CacheRepository es un cache clave-valor para resultados derivados del
// motor (por ejemplo, listas de insights por deudor).
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
