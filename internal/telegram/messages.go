package telegram

// Тексты ответов бота. %s подставляются уже экранированными для Markdown.
const (
	msgWelcomeLinked = "👋 Olá, %s! Sou o FIN, seu assistente financeiro.\n\n" +
		"Você já está conectado! Use:\n" +
		"• /saldo - Ver resumo financeiro\n" +
		"• /metas - Ver suas metas\n" +
		"• Ou simplesmente me conte o que gastou!\n\n" +
		"Exemplo: \"gastei 50 no mercado\""

	msgWelcomeGuest = "👋 Olá! Sou o FIN, seu assistente financeiro inteligente.\n\n" +
		"Para usar todas as funcionalidades, você precisa vincular sua conta do ContaFlow IA.\n\n" +
		"📱 Acesse o app e clique em \"Conectar Telegram\" para obter seu código de vinculação.\n\n" +
		"Depois, envie:\n/vincular SEU\\_CODIGO"

	msgLinkFirst = "🔗 Você precisa vincular sua conta primeiro!\n\n" +
		"1. Acesse o ContaFlow IA\n" +
		"2. Clique em 'Conectar Telegram'\n" +
		"3. Envie aqui: /vincular SEU\\_CODIGO"

	msgCodeMalformed = "❌ Código inválido. Use: /vincular SEU\\_CODIGO"
	msgCodeRejected  = "❌ Código inválido ou expirado. Gere um novo código no app!"
	msgLinkFailed    = "❌ Erro ao vincular conta. Tente novamente!"
	msgLinked        = "✅ Conta vinculada com sucesso, %s!\n\n" +
		"Agora você pode:\n" +
		"• Me contar seus gastos (\"gastei 50 no mercado\")\n" +
		"• Ver seu /saldo\n" +
		"• Acompanhar suas /metas\n" +
		"• Conversar sobre finanças\n\n" +
		"🚀 Vamos conquistar sua liberdade financeira juntos!"

	msgBalance = "📊 *Seu Resumo Financeiro*\n\n" +
		"💰 Renda mensal: %s\n" +
		"💳 Dívidas totais: %s\n" +
		"📅 Parcelas do mês: %s\n" +
		"🎉 Lazer disponível: %s\n\n" +
		"Quer ver mais detalhes? Me pergunte!"

	msgGoalsHeader = "🎯 *Suas Metas*\n\n"
	// имя цели вне *...*: внутри сущности \-экранирование не действует
	msgGoalLine    = "• %s\n%s %s\n%s / %s\n\n"
	msgNoGoals     = "🎯 Você ainda não tem metas cadastradas!\n\n" +
		"Acesse o ContaFlow IA para criar suas primeiras metas financeiras."

	msgLoadFailed = "❌ Não consegui carregar seus dados agora. Tente novamente em instantes!"

	msgInvalidAmount      = "❌ Valor inválido. Use valores entre R$0,01 e R$1.000.000"
	msgInvalidDescription = "❌ Descrição inválida. Informe onde você gastou."
	msgExpenseFailed      = "❌ Erro ao registrar despesa. Tente novamente!"
	msgExpenseSaved       = "✅ Anotado! %s em \"%s\"\n\nQuer que eu analise como está seu mês?"
	msgExpenseSavedBudget = "✅ Anotado! %s em \"%s\"\n\n💰 Lazer restante: %s\n\nQuer que eu analise esse gasto?"
)
