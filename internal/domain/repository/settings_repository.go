package repository

// SettingsRepository blob de configuración del negocio (nombre, datos fiscales,
// logo) direccionado por clave. Get devuelve (nil, nil) si la clave no existe.
type SettingsRepository interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}
