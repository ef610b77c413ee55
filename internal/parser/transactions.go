package parser

import "github.com/Borislavv/go-ash-state/config"

// configureTransactions always resolves the manager identifier, so a manager
// can be started later without parsing the options again.
func (p *Parser) configureTransactions(name string, opts config.Options, st *config.State) error {
	st.Transactions = p.flag(name, opts, config.KeyTransactions)
	st.Manager = p.names.ManagerName(name)
	return nil
}
