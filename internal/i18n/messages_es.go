package i18n

var spanishMessages = `
	[app.usage]
	other = "Gestioná plantillas de issues y reportá bugs bien formados desde tu terminal"

	[app.description]
	other = "issuemate crea las plantillas de issues de un repositorio, las revisa con lint y publica issues cuyo cuerpo sigue esas plantillas. Los borradores sobreviven a publicaciones fallidas y un proveedor de IA puede completar las secciones por vos."

	[app.debug_flag_usage]
	other = "Mostrá logs de debug con ubicación en el código"

	[app.verbose_flag_usage]
	other = "Mostrá logs informativos"

	[app.update_available]
	other = "¡Hay una nueva versión {{.Version}} disponible! Descargala en: {{.URL}}"

	[app.factory_already_registered]
	other = "Ya hay un comando registrado con el nombre '{{.FactoryName}}'"

	[ui_error.try_suggestion]
	other = "💡 Probá: "

	[ui.token_usage]
	other = "Uso de tokens"

	[ui.input]
	other = "entrada"

	[ui.output]
	other = "salida"

	[ui.total]
	other = "total"

	[ui.cost]
	other = "Costo"

	[ui.duration]
	other = "Duración"

	[ui_error.error_saving_config]
	other = "No se pudo guardar la configuración"

	[template.usage]
	other = "Trabajá con las plantillas de issues de este repositorio"

	[template_list.usage]
	other = "Listá las plantillas que la plataforma mostraría en su menú de 'new issue'"

	[template_list.empty]
	other = "No hay plantillas. Corré 'issuemate template init' para crear las predeterminadas"

	[template_list.header]
	other = "Plantillas en {{.Dir}}:"

	[template_list.form_label]
	other = "form"

	[template_show.usage]
	other = "Mostrá una plantilla: sus metadatos y los encabezados de sus secciones"

	[template_show.arg_missing]
	other = "Decime qué plantilla mostrar, por ejemplo: issuemate template show \"Bug report\""

	[template_show.raw_flag_usage]
	other = "Imprimir el archivo crudo en vez de la vista parseada"

	[template_show.metadata_header]
	other = "Metadatos"

	[template_show.sections_header]
	other = "Secciones"

	[template_init.usage]
	other = "Creá las plantillas de issues predeterminadas en el directorio de plantillas"

	[template_init.force_flag_usage]
	other = "Sobrescribir archivos que ya existen"

	[template_init.created]
	other = "Creado {{.Path}}"

	[template_init.skipped]
	other = "Omitido {{.Path}} (ya existe)"

	[template_init.done]
	one = "Listo: {{.Count}} archivo escrito en {{.Dir}}"
	other = "Listo: {{.Count}} archivos escritos en {{.Dir}}"

	[template_lint.usage]
	other = "Revisá que las plantillas tengan las claves de front-matter y las secciones esperadas"

	[template_lint.watch_flag_usage]
	other = "Volver a revisar cada vez que cambie un archivo de plantilla"

	[template_lint.file_flag_usage]
	other = "Revisar un solo archivo en vez de todo el directorio"

	[template_lint.ok]
	one = "{{.Count}} plantilla revisada, sin problemas"
	other = "{{.Count}} plantillas revisadas, sin problemas"

	[template_lint.problems]
	other = "{{.Errors}} error(es), {{.Warnings}} advertencia(s)"

	[template_lint.watching]
	other = "Observando {{.Dir}} (ctrl+c para salir)"

	[template_pull.usage]
	other = "Traé las plantillas de issues de un repositorio remoto de GitHub"

	[template_pull.repo_flag_usage]
	other = "Repositorio de origen, como owner/repo"

	[template_pull.force_flag_usage]
	other = "Sobrescribir plantillas locales que ya existen"

	[template_pull.repo_invalid]
	other = "El valor de --repo '{{.Repo}}' no es válido, se espera owner/repo"

	[template_pull.fetching]
	other = "Descargando plantillas de {{.Owner}}/{{.Repo}}..."

	[template_pull.fetched]
	one = "Se trajo {{.Count}} plantilla de {{.Owner}}/{{.Repo}}"
	other = "Se trajeron {{.Count}} plantillas de {{.Owner}}/{{.Repo}}"

	[template_pull.none_found]
	other = "{{.Owner}}/{{.Repo}} no tiene plantillas de issues"

	[new.usage]
	other = "Creá un issue nuevo a partir de una plantilla"

	[new.template_flag_usage]
	other = "Plantilla a usar, por nombre o nombre de archivo"

	[new.title_flag_usage]
	other = "Título del issue"

	[new.section_flag_usage]
	other = "Completá una sección, como 'Encabezado=contenido' (repetible)"

	[new.editor_flag_usage]
	other = "Abrir $EDITOR para completar el cuerpo"

	[new.ai_flag_usage]
	other = "Redactar el cuerpo con IA a partir de una descripción corta"

	[new.context_flag_usage]
	other = "Qué pasó, en tus palabras (lo usa --ai)"

	[new.dry_run_flag_usage]
	other = "Imprimir el issue en vez de publicarlo"

	[new.label_flag_usage]
	other = "Etiqueta extra para el issue (repetible)"

	[new.assign_me_flag_usage]
	other = "Asignar el issue al usuario autenticado"

	[new.draft_flag_usage]
	other = "Guardar como borrador local en vez de publicar"

	[new.no_templates]
	other = "No hay plantillas acá. Corré 'issuemate template init' primero"

	[new.pick_template]
	other = "Elegí una plantilla"

	[new.blank_issue]
	other = "Issue en blanco"

	[new.title_prompt]
	other = "Título del issue: "

	[new.title_empty]
	other = "El issue necesita un título"

	[new.generating]
	other = "Redactando el reporte con {{.Model}}..."

	[new.publishing]
	other = "Publicando issue"

	[new.created]
	other = "Issue #{{.Number}} creado: {{.URL}}"

	[new.dry_run_header]
	other = "Esto es lo que se publicaría:"

	[new.draft_saved]
	other = "Borrador guardado. Retomalo con: issuemate draft resume {{.ID}}"

	[new.cancelled]
	other = "Cancelado, no se creó nada"

	[new.empty_sections_warning]
	one = "Quedó {{.Count}} sección vacía"
	other = "Quedaron {{.Count}} secciones vacías"

	[new.publish_anyway]
	other = "¿Publicar igual?"

	[new.section_invalid]
	other = "El valor de --section '{{.Value}}' no es válido, se espera 'Título=contenido'"

	[new.editor_failed]
	other = "No se pudo abrir el editor"

	[new.assignee_failed]
	other = "No se pudo resolver el usuario autenticado"

	[new.link_redirect]
	other = "Esa opción se maneja en otro lado: {{.URL}}"

	[preview.usage]
	other = "Mostrá una plantilla en la terminal tal como la plataforma la precarga"

	[preview.arg_missing]
	other = "Decime qué plantilla previsualizar, por ejemplo: issuemate preview \"Bug report\""

	[preview.plain_flag_usage]
	other = "Imprimir markdown plano sin estilos de terminal"

	[draft.usage]
	other = "Gestioná los borradores de issues guardados localmente"

	[draft_list.usage]
	other = "Listá los borradores guardados"

	[draft_list.empty]
	other = "No hay borradores guardados"

	[draft_list.header]
	other = "Borradores guardados:"

	[draft_list.untitled]
	other = "(sin título)"

	[draft_resume.usage]
	other = "Retomá un borrador y publicalo"

	[draft_resume.arg_missing]
	other = "Decime qué borrador, por ejemplo: issuemate draft resume <id>"

	[draft_rm.usage]
	other = "Borrá un borrador"

	[draft_rm.arg_missing]
	other = "Decime qué borrador, por ejemplo: issuemate draft rm <id>"

	[draft_rm.removed]
	other = "Borrador {{.ID}} eliminado"

	[doctor.usage]
	other = "Revisá que issuemate y este repositorio estén listos para crear issues"

	[doctor.header]
	other = "issuemate doctor"

	[doctor.config_ok]
	other = "Configuración cargada de {{.Path}}"

	[doctor.templates_dir_ok]
	other = "Directorio de plantillas: {{.Dir}}"

	[doctor.templates_dir_missing]
	other = "El directorio de plantillas {{.Dir}} no existe"

	[doctor.templates_found]
	one = "{{.Count}} plantilla encontrada"
	other = "{{.Count}} plantillas encontradas"

	[doctor.lint_ok]
	other = "Todas las plantillas pasan el lint"

	[doctor.lint_problems]
	other = "El lint encontró {{.Errors}} error(es) y {{.Warnings}} advertencia(s)"

	[doctor.token_ok]
	other = "Token de GitHub válido, autenticado como {{.User}}"

	[doctor.token_missing]
	other = "No hay token de GitHub configurado (publicación deshabilitada)"

	[doctor.token_invalid]
	other = "GitHub rechazó el token"

	[doctor.ai_ok]
	other = "Redacción con IA lista ({{.Model}})"

	[doctor.ai_missing]
	other = "Redacción con IA sin configurar (opcional)"

	[doctor.update_ok]
	other = "issuemate {{.Version}} está al día"

	[doctor.summary_ok]
	other = "Todo en orden"

	[doctor.summary_problems]
	one = "Se encontró {{.Count}} problema"
	other = "Se encontraron {{.Count}} problemas"

	[config.usage]
	other = "Mirá y cambiá la configuración de issuemate"

	[config_init.usage]
	other = "Creá el archivo de configuración con los valores predeterminados"

	[config_init.created]
	other = "Configuración creada en {{.Path}}"

	[config_init.already]
	other = "La configuración ya existe en {{.Path}}"

	[config_show.usage]
	other = "Mostrá la configuración actual"

	[config_show.header]
	other = "Configuración actual"

	[config_set_lang.usage]
	other = "Elegí el idioma de la interfaz (en, es)"

	[config_set_lang.updated]
	other = "Idioma cambiado a {{.Lang}}"

	[config_set_lang.invalid]
	other = "Idioma no soportado: {{.Lang}}. Soportados: en, es"

	[config_set_vcs.usage]
	other = "Configurá un proveedor de VCS (owner, repo, token)"

	[config_set_vcs.provider_flag_usage]
	other = "Proveedor a configurar (github, gitlab)"

	[config_set_vcs.owner_flag_usage]
	other = "Dueño u organización del repositorio"

	[config_set_vcs.repo_flag_usage]
	other = "Nombre del repositorio"

	[config_set_vcs.token_flag_usage]
	other = "Token de API del proveedor"

	[config_set_vcs.updated]
	other = "Proveedor de VCS '{{.Provider}}' configurado"

	[config_set_vcs.invalid]
	other = "Proveedor de VCS no soportado: {{.Provider}}. Soportados: github, gitlab"

	[config_set_ai_key.usage]
	other = "Guardá la API key de un proveedor de IA"

	[config_set_ai_key.provider_flag_usage]
	other = "Proveedor de IA (gemini)"

	[config_set_ai_key.updated]
	other = "API key de '{{.Provider}}' guardada"

	[config_set_ai_key.invalid]
	other = "Proveedor de IA no soportado: {{.Provider}}. Soportados: gemini"

	[config_set_emoji.usage]
	other = "Prendé o apagá los emojis"

	[config_set_emoji.on]
	other = "Emojis activados 🧉"

	[config_set_emoji.off]
	other = "Emojis desactivados"

	[config_set_emoji.invalid]
	other = "Decí 'on' u 'off'"

	[config_save.error_saving_config]
	other = "Error al guardar la configuración: {{.Error}}"

	[completion.usage]
	other = "Generá scripts de autocompletado para tu shell"

	[completion.description]
	other = "Imprime por stdout un script de autocompletado para bash, zsh, fish o powershell"

	[completion.unsupported_shell]
	other = "Shell no soportada: {{.Shell}}"

	[completion.bash_usage]
	other = "Imprime el script de autocompletado para bash"

	[completion.zsh_usage]
	other = "Imprime el script de autocompletado para zsh"

	[completion.fish_usage]
	other = "Imprime el script de autocompletado para fish"

	[completion.install_usage]
	other = "Agregá el hook de autocompletado a la config de tu shell"

	[completion.error_home_dir]
	other = "No se pudo resolver tu directorio home: {{.Error}}"

	[completion.already_installed]
	other = "El autocompletado ya está instalado en {{.File}}"

	[completion.restart_shell]
	other = "Reiniciá tu shell o ejecutá:"

	[completion.error_open_config]
	other = "No se pudo abrir la config de tu shell: {{.Error}}"

	[completion.error_write_config]
	other = "No se pudo escribir la config de tu shell: {{.Error}}"

	[completion.installed_success]
	other = "Autocompletado instalado en {{.File}}"
	`
