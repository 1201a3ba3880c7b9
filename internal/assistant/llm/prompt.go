package llm

import (
	"fmt"
	"strings"
)

const basePrompt = `Eres el asistente de Campus Connect, la red social universitaria.
Responde siempre en español, con un tono cercano y conciso.
Cuando el usuario pida una acción (enviar un mensaje, publicar, unirse a un grupo, inscribirse a un evento), usa las herramientas disponibles en lugar de describir la acción.
Después de ejecutar una acción, confirma al usuario lo que hiciste.
Si una herramienta no encuentra resultados, dilo con naturalidad y sugiere una alternativa.`

// BuildSystemPrompt composes the fixed assistant policy with an
// optional user specialization. Pure function, no side effects.
func BuildSystemPrompt(career string) string {
	career = strings.TrimSpace(career)
	if career == "" {
		return basePrompt
	}
	return fmt.Sprintf("%s\nEl usuario estudia %s; adapta tus ejemplos y recomendaciones a esa carrera.", basePrompt, career)
}
