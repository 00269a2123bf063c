package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/informetec/visitas-web/internal/application/usecase"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/pkg/logger"
)

func TestCargador_Subir_UsaSoloElPrimerArchivo(t *testing.T) {
	var subido string
	api := &archivosFalsos{
		SubirFn: func(nombre string, contenido []byte) (string, error) {
			subido = nombre
			return "/uploads/" + nombre, nil
		},
	}
	c := usecase.NewCargador(api, logger.Nop())

	url, ok := c.Subir(context.Background(), "s",
		usecase.Archivo{Nombre: "zona1.jpg", Contenido: []byte("img1")},
		usecase.Archivo{Nombre: "zona2.jpg", Contenido: []byte("img2")},
	)

	require.True(t, ok)
	assert.Equal(t, "/uploads/zona1.jpg", url)
	assert.Equal(t, "zona1.jpg", subido, "del lote solo se sube el primer archivo")
	assert.Equal(t, []string{"Subir"}, api.llamadas)
}

func TestCargador_Subir_FalloSilencioso(t *testing.T) {
	api := &archivosFalsos{
		SubirFn: func(string, []byte) (string, error) {
			return "", &domain.ErrorBackend{Tipo: domain.ErrConexion}
		},
	}
	c := usecase.NewCargador(api, logger.Nop())

	url, ok := c.Subir(context.Background(), "s", usecase.Archivo{Nombre: "zona1.jpg", Contenido: []byte("img")})

	assert.False(t, ok, "el fallo no se propaga como error")
	assert.Empty(t, url, "el campo del llamador queda como estaba")
	assert.Empty(t, c.VistaPrevia(), "la vista previa se limpia aunque la subida falle")
	assert.Equal(t, usecase.EstadoInactivo, c.Estado())
}

func TestCargador_Subir_SinArchivos(t *testing.T) {
	api := &archivosFalsos{}
	c := usecase.NewCargador(api, logger.Nop())

	_, ok := c.Subir(context.Background(), "s")
	assert.False(t, ok)
	assert.Empty(t, api.llamadas)

	_, ok = c.Subir(context.Background(), "s", usecase.Archivo{Nombre: "vacio.jpg"})
	assert.False(t, ok, "un archivo sin contenido no se sube")
	assert.Empty(t, api.llamadas)
}

func TestCargador_VistaPreviaDuranteLaSubida(t *testing.T) {
	var previa string
	api := &archivosFalsos{}
	c := usecase.NewCargador(api, logger.Nop())
	api.SubirFn = func(string, []byte) (string, error) {
		previa = c.VistaPrevia()
		return "/uploads/zona1.jpg", nil
	}

	_, ok := c.Subir(context.Background(), "s", usecase.Archivo{Nombre: "zona1.jpg", Contenido: []byte("img")})

	require.True(t, ok)
	assert.True(t, strings.HasPrefix(previa, "data:image/jpeg;base64,"),
		"durante la subida hay una vista previa local en data URL")
	assert.Empty(t, c.VistaPrevia(), "al terminar la vista previa se limpia")
}
