package i18n

var defaultMessages = `
	[app.usage]
	other = "Manage issue templates and file well-formed reports from your terminal"

	[app.description]
	other = "issuemate scaffolds the issue templates of a repository, lints them, and files issues whose bodies follow those templates. Drafts survive failed publishes and an AI provider can prefill the sections for you."

	[app.debug_flag_usage]
	other = "Log debug output with source locations"

	[app.verbose_flag_usage]
	other = "Log informational output"

	[app.update_available]
	other = "New version {{.Version}} available! Download it at: {{.URL}}"

	[app.factory_already_registered]
	other = "A command named '{{.FactoryName}}' is already registered"

	[ui_error.try_suggestion]
	other = "💡 Try: "

	[ui.token_usage]
	other = "Token usage"

	[ui.input]
	other = "input"

	[ui.output]
	other = "output"

	[ui.total]
	other = "total"

	[ui.cost]
	other = "Cost"

	[ui.duration]
	other = "Duration"

	[ui_error.error_saving_config]
	other = "Could not save the configuration"

	[template.usage]
	other = "Work with the issue templates of this repository"

	[template_list.usage]
	other = "List the templates the platform would show in its 'new issue' menu"

	[template_list.empty]
	other = "No templates found. Run 'issuemate template init' to scaffold the defaults"

	[template_list.header]
	other = "Templates in {{.Dir}}:"

	[template_list.form_label]
	other = "form"

	[template_show.usage]
	other = "Show one template: its metadata and section headings"

	[template_show.arg_missing]
	other = "Tell me which template to show, e.g.: issuemate template show \"Bug report\""

	[template_show.raw_flag_usage]
	other = "Print the raw file instead of the parsed view"

	[template_show.metadata_header]
	other = "Metadata"

	[template_show.sections_header]
	other = "Sections"

	[template_init.usage]
	other = "Scaffold the default issue templates into the template directory"

	[template_init.force_flag_usage]
	other = "Overwrite files that already exist"

	[template_init.created]
	other = "Created {{.Path}}"

	[template_init.skipped]
	other = "Skipped {{.Path}} (already exists)"

	[template_init.done]
	one = "Done: {{.Count}} file written to {{.Dir}}"
	other = "Done: {{.Count}} files written to {{.Dir}}"

	[template_lint.usage]
	other = "Check templates for missing front-matter keys and sections"

	[template_lint.watch_flag_usage]
	other = "Re-lint whenever a template file changes"

	[template_lint.file_flag_usage]
	other = "Lint a single file instead of the whole directory"

	[template_lint.ok]
	one = "{{.Count}} template checked, no problems"
	other = "{{.Count}} templates checked, no problems"

	[template_lint.problems]
	other = "{{.Errors}} error(s), {{.Warnings}} warning(s)"

	[template_lint.watching]
	other = "Watching {{.Dir}} for changes (ctrl+c to stop)"

	[template_pull.usage]
	other = "Fetch the issue templates of a remote GitHub repository"

	[template_pull.repo_flag_usage]
	other = "Repository to pull from, as owner/repo"

	[template_pull.force_flag_usage]
	other = "Overwrite local templates that already exist"

	[template_pull.repo_invalid]
	other = "Invalid --repo value '{{.Repo}}', expected owner/repo"

	[template_pull.fetching]
	other = "Fetching templates from {{.Owner}}/{{.Repo}}..."

	[template_pull.fetched]
	one = "Fetched {{.Count}} template from {{.Owner}}/{{.Repo}}"
	other = "Fetched {{.Count}} templates from {{.Owner}}/{{.Repo}}"

	[template_pull.none_found]
	other = "{{.Owner}}/{{.Repo}} has no issue templates"

	[new.usage]
	other = "File a new issue from a template"

	[new.template_flag_usage]
	other = "Template to use, by name or file name"

	[new.title_flag_usage]
	other = "Issue title"

	[new.section_flag_usage]
	other = "Fill a section, as 'Heading=content' (repeatable)"

	[new.editor_flag_usage]
	other = "Open $EDITOR to fill the body"

	[new.ai_flag_usage]
	other = "Draft the body with AI from a short description"

	[new.context_flag_usage]
	other = "What happened, in your own words (used by --ai)"

	[new.dry_run_flag_usage]
	other = "Print the issue instead of publishing it"

	[new.label_flag_usage]
	other = "Extra label for the issue (repeatable)"

	[new.assign_me_flag_usage]
	other = "Assign the issue to the authenticated user"

	[new.draft_flag_usage]
	other = "Save as a local draft instead of publishing"

	[new.no_templates]
	other = "No templates here. Run 'issuemate template init' first"

	[new.pick_template]
	other = "Pick a template"

	[new.blank_issue]
	other = "Blank issue"

	[new.title_prompt]
	other = "Issue title: "

	[new.title_empty]
	other = "The issue needs a title"

	[new.generating]
	other = "Drafting the report with {{.Model}}..."

	[new.publishing]
	other = "Publishing issue"

	[new.created]
	other = "Issue #{{.Number}} created: {{.URL}}"

	[new.dry_run_header]
	other = "This is what would be published:"

	[new.draft_saved]
	other = "Draft saved. Resume it with: issuemate draft resume {{.ID}}"

	[new.cancelled]
	other = "Cancelled, nothing was filed"

	[new.empty_sections_warning]
	one = "{{.Count}} section was left empty"
	other = "{{.Count}} sections were left empty"

	[new.publish_anyway]
	other = "Publish anyway?"

	[new.section_invalid]
	other = "Invalid --section value '{{.Value}}', expected 'Heading=content'"

	[new.editor_failed]
	other = "Could not open the editor"

	[new.assignee_failed]
	other = "Could not resolve the authenticated user"

	[new.link_redirect]
	other = "That option is handled elsewhere: {{.URL}}"

	[preview.usage]
	other = "Render a template in the terminal the way the platform prefills it"

	[preview.arg_missing]
	other = "Tell me which template to preview, e.g.: issuemate preview \"Bug report\""

	[preview.plain_flag_usage]
	other = "Print plain markdown without terminal styling"

	[draft.usage]
	other = "Manage locally saved issue drafts"

	[draft_list.usage]
	other = "List saved drafts"

	[draft_list.empty]
	other = "No drafts saved"

	[draft_list.header]
	other = "Saved drafts:"

	[draft_list.untitled]
	other = "(untitled)"

	[draft_resume.usage]
	other = "Resume a draft and publish it"

	[draft_resume.arg_missing]
	other = "Tell me which draft, e.g.: issuemate draft resume <id>"

	[draft_rm.usage]
	other = "Delete a draft"

	[draft_rm.arg_missing]
	other = "Tell me which draft, e.g.: issuemate draft rm <id>"

	[draft_rm.removed]
	other = "Draft {{.ID}} deleted"

	[doctor.usage]
	other = "Check that issuemate and this repository are ready to file issues"

	[doctor.header]
	other = "issuemate doctor"

	[doctor.config_ok]
	other = "Config loaded from {{.Path}}"

	[doctor.templates_dir_ok]
	other = "Template directory: {{.Dir}}"

	[doctor.templates_dir_missing]
	other = "Template directory {{.Dir}} does not exist"

	[doctor.templates_found]
	one = "{{.Count}} template found"
	other = "{{.Count}} templates found"

	[doctor.lint_ok]
	other = "All templates pass lint"

	[doctor.lint_problems]
	other = "Lint found {{.Errors}} error(s) and {{.Warnings}} warning(s)"

	[doctor.token_ok]
	other = "GitHub token valid, authenticated as {{.User}}"

	[doctor.token_missing]
	other = "No GitHub token configured (publishing disabled)"

	[doctor.token_invalid]
	other = "GitHub token rejected"

	[doctor.ai_ok]
	other = "AI drafting ready ({{.Model}})"

	[doctor.ai_missing]
	other = "AI drafting not configured (optional)"

	[doctor.update_ok]
	other = "issuemate {{.Version}} is up to date"

	[doctor.summary_ok]
	other = "Everything looks good"

	[doctor.summary_problems]
	one = "{{.Count}} problem found"
	other = "{{.Count}} problems found"

	[config.usage]
	other = "Read and change the issuemate configuration"

	[config_init.usage]
	other = "Create the config file with defaults"

	[config_init.created]
	other = "Config created at {{.Path}}"

	[config_init.already]
	other = "Config already exists at {{.Path}}"

	[config_show.usage]
	other = "Show the current configuration"

	[config_show.header]
	other = "Current configuration"

	[config_set_lang.usage]
	other = "Set the interface language (en, es)"

	[config_set_lang.updated]
	other = "Language set to {{.Lang}}"

	[config_set_lang.invalid]
	other = "Unsupported language: {{.Lang}}. Supported: en, es"

	[config_set_vcs.usage]
	other = "Configure a VCS provider (owner, repo, token)"

	[config_set_vcs.provider_flag_usage]
	other = "Provider to configure (github, gitlab)"

	[config_set_vcs.owner_flag_usage]
	other = "Repository owner or organization"

	[config_set_vcs.repo_flag_usage]
	other = "Repository name"

	[config_set_vcs.token_flag_usage]
	other = "API token for the provider"

	[config_set_vcs.updated]
	other = "VCS provider '{{.Provider}}' configured"

	[config_set_vcs.invalid]
	other = "Unsupported VCS provider: {{.Provider}}. Supported: github, gitlab"

	[config_set_ai_key.usage]
	other = "Store the API key of an AI provider"

	[config_set_ai_key.provider_flag_usage]
	other = "AI provider (gemini)"

	[config_set_ai_key.updated]
	other = "API key for '{{.Provider}}' saved"

	[config_set_ai_key.invalid]
	other = "Unsupported AI provider: {{.Provider}}. Supported: gemini"

	[config_set_emoji.usage]
	other = "Turn emoji output on or off"

	[config_set_emoji.on]
	other = "Emoji output enabled 🧉"

	[config_set_emoji.off]
	other = "Emoji output disabled"

	[config_set_emoji.invalid]
	other = "Say 'on' or 'off'"

	[config_save.error_saving_config]
	other = "Error saving the configuration: {{.Error}}"

	[completion.usage]
	other = "Generate shell completion scripts"

	[completion.description]
	other = "Prints a completion script for bash, zsh, fish or powershell to stdout"

	[completion.unsupported_shell]
	other = "Unsupported shell: {{.Shell}}"

	[completion.bash_usage]
	other = "Print the bash completion script"

	[completion.zsh_usage]
	other = "Print the zsh completion script"

	[completion.fish_usage]
	other = "Print the fish completion script"

	[completion.install_usage]
	other = "Append the completion hook to your shell config"

	[completion.error_home_dir]
	other = "Could not resolve your home directory: {{.Error}}"

	[completion.already_installed]
	other = "Completion already installed in {{.File}}"

	[completion.restart_shell]
	other = "Restart your shell or run:"

	[completion.error_open_config]
	other = "Could not open the shell config: {{.Error}}"

	[completion.error_write_config]
	other = "Could not write the shell config: {{.Error}}"

	[completion.installed_success]
	other = "Completion installed in {{.File}}"
	`
